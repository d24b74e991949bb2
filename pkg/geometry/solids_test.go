package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

func TestSolids_Counts(t *testing.T) {
	tests := []struct {
		name          string
		body          *MeshBody
		expectedFaces int
	}{
		{"Quad", NewQuad(MockMaterial{}), 2},
		{"Cube", NewCube(1, 1, 1, MockMaterial{}), 12},
		{"Sphere", NewSphere(16, 8, MockMaterial{}), 16 * 8 * 2},
		{"Tetrahedron", NewTetrahedron(MockMaterial{}), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.body.FaceCount() != tt.expectedFaces {
				t.Errorf("Expected %d faces, got %d", tt.expectedFaces, tt.body.FaceCount())
			}
		})
	}
}

// Face normals of closed solids point away from the body's center
func TestSolids_OutwardWinding(t *testing.T) {
	bodies := map[string]*MeshBody{
		"Cube":        NewCube(2, 1, 3, MockMaterial{}),
		"Sphere":      NewSphere(12, 6, MockMaterial{}),
		"Tetrahedron": NewTetrahedron(MockMaterial{}),
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			center := body.BoundingBox().Center()
			if name == "Tetrahedron" {
				// Centroid of the four vertices
				center = core.NewVec3(0, math.Sqrt(2.0/3.0)/4, 0)
			}
			for f := 0; f < body.FaceCount(); f++ {
				p0, p1, p2 := body.Triangle(f)
				normal := p1.Subtract(p0).Cross(p2.Subtract(p0))
				if normal.LengthSquared() < 1e-12 {
					continue // degenerate pole triangles
				}
				centroid := p0.Add(p1).Add(p2).Multiply(1.0 / 3)
				if normal.Dot(centroid.Subtract(center)) <= 0 {
					t.Fatalf("face %d winds inward", f)
				}
			}
		})
	}
}

func TestNewTetrahedron_UnitEdges(t *testing.T) {
	body := NewTetrahedron(MockMaterial{})

	for f := 0; f < body.FaceCount(); f++ {
		p0, p1, p2 := body.Triangle(f)
		for _, edge := range []float64{p0.Distance(p1), p1.Distance(p2), p2.Distance(p0)} {
			if math.Abs(edge-1) > 1e-12 {
				t.Errorf("face %d: expected unit edge, got %f", f, edge)
			}
		}
	}
}

func TestNewCube_Extents(t *testing.T) {
	cube := NewCube(1, 4, 2, MockMaterial{})
	size := cube.BoundingBox().Size()
	if !vecAlmostEqual(size, core.NewVec3(1, 4, 2), 1e-12) {
		t.Errorf("Expected size (1,4,2), got %v", size)
	}
}

func TestNewSphere_HitDistance(t *testing.T) {
	sphere := NewSphere(64, 32, MockMaterial{})
	sphere.SetTransform(mgl64.Translate3D(0, 2, 0).Mul4(mgl64.Scale3D(3, 3, 3)))

	hit, isHit := sphere.Intersect(core.NewRay(core.NewVec3(0.01, 20, 0.01), core.NewVec3(0, -1, 0)))
	if !isHit {
		t.Fatal("Expected a hit")
	}
	// Pole of the scaled sphere is at y=5
	if math.Abs(hit.Distance-15) > 2e-3 {
		t.Errorf("Expected t=15, got t=%f", hit.Distance)
	}
	if hit.InterpolatedNormal.Y < 0.999 {
		t.Errorf("Expected a normal close to +Y at the pole, got %v", hit.InterpolatedNormal)
	}
}

func TestNewSphere_TooCoarsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for a degenerate sphere")
		}
	}()
	NewSphere(2, 1, MockMaterial{})
}

func TestPlacement_SingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for a singular transform")
		}
	}()
	NewPlacement(mgl64.Scale3D(1, 0, 1))
}

func TestCompose_Order(t *testing.T) {
	// Scale, then rotate 90 degrees around Y, then translate
	m := Compose(mgl64.Vec3{2, 1, 1}, mgl64.Vec3{0, math.Pi / 2, 0}, mgl64.Vec3{0, 0, 10})
	p := core.NewVec3(1, 0, 0).TransformPoint(m)

	// (1,0,0) -> (2,0,0) -> (0,0,-2) -> (0,0,8)
	if !vecAlmostEqual(p, core.NewVec3(0, 0, 8), 1e-9) {
		t.Errorf("Expected (0,0,8), got %v", p)
	}
}
