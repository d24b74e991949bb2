package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// MockMaterial is a core.Material that shades with a constant color
type MockMaterial struct {
	Color core.Vec3
}

func (m MockMaterial) Shade(scene core.Scene, depth int, ray core.Ray, hit core.HitInfo) core.Vec3 {
	return m.Color
}

func (m MockMaterial) DiffuseColor() core.Vec3 { return m.Color }

func vecAlmostEqual(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestMeshBody_Creation(t *testing.T) {
	quad := NewQuad(MockMaterial{})

	if quad.FaceCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", quad.FaceCount())
	}
	if quad.VertexCount() != 4 {
		t.Errorf("Expected 4 vertices, got %d", quad.VertexCount())
	}

	bbox := quad.BoundingBox()
	const tolerance = 1e-9
	if !vecAlmostEqual(bbox.Min, core.NewVec3(-0.5, -0.5, 0), tolerance) {
		t.Errorf("Expected min (-0.5,-0.5,0), got %v", bbox.Min)
	}
	if !vecAlmostEqual(bbox.Max, core.NewVec3(0.5, 0.5, 0), tolerance) {
		t.Errorf("Expected max (0.5,0.5,0), got %v", bbox.Max)
	}
}

func TestMeshBody_InvalidInputPanics(t *testing.T) {
	vertices := []Vertex{
		{Position: core.NewVec3(0, 0, 0)},
		{Position: core.NewVec3(1, 0, 0)},
		{Position: core.NewVec3(0, 1, 0)},
	}

	tests := []struct {
		name    string
		indices []int
	}{
		{"Not a multiple of three", []int{0, 1}},
		{"Index out of range", []int{0, 1, 3}},
		{"Negative index", []int{0, -1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected a panic")
				}
			}()
			NewMeshBody(vertices, tt.indices, MockMaterial{})
		})
	}

	t.Run("Missing material", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected a panic")
			}
		}()
		NewMeshBody(vertices, []int{0, 1, 2}, nil)
	})
}

func TestMeshBody_Intersect(t *testing.T) {
	material := MockMaterial{Color: core.NewVec3(1, 0, 0)}
	quad := NewQuad(material)
	// 4x4 floor at y=1 facing up
	quad.SetTransform(Compose(mgl64.Vec3{4, 4, 4}, mgl64.Vec3{-math.Pi / 2, 0, 0}, mgl64.Vec3{0, 1, 0}))

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Straight down onto the floor",
			ray:       core.NewRay(core.NewVec3(0.5, 5, 0.5), core.NewVec3(0, -1, 0)),
			shouldHit: true,
			expectedT: 4,
		},
		{
			name:      "From below",
			ray:       core.NewRay(core.NewVec3(-1, -2, 1), core.NewVec3(0, 1, 0)),
			shouldHit: true,
			expectedT: 3,
		},
		{
			name:      "Outside the scaled extent",
			ray:       core.NewRay(core.NewVec3(2.5, 5, 0), core.NewVec3(0, -1, 0)),
			shouldHit: false,
		},
		{
			name:      "Pointing away",
			ray:       core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Intersect(tt.ray)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}
			if !vecAlmostEqual(hit.FaceNormal, core.NewVec3(0, 1, 0), 1e-9) {
				t.Errorf("Expected face normal (0,1,0), got %v", hit.FaceNormal)
			}
			if !vecAlmostEqual(hit.InterpolatedNormal, core.NewVec3(0, 1, 0), 1e-9) {
				t.Errorf("Expected interpolated normal (0,1,0), got %v", hit.InterpolatedNormal)
			}
			if hit.Material != material {
				t.Error("Expected the body's material on the hit")
			}
		})
	}
}

func TestMeshBody_TextureCoordinates(t *testing.T) {
	quad := NewQuad(MockMaterial{})

	// Corner (0.5, 0.5) of the quad carries uv (1, 0)
	hit, isHit := quad.Intersect(core.NewRay(core.NewVec3(0.49, 0.3, 1), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.TexturePos.X-0.99) > 1e-9 || math.Abs(hit.TexturePos.Y-0.2) > 1e-9 {
		t.Errorf("Expected uv (0.99, 0.2), got %v", hit.TexturePos)
	}
}

func TestMeshBody_ClosestTriangleWins(t *testing.T) {
	// Two parallel triangles stacked along Z in one body
	vertices := []Vertex{
		{Position: core.NewVec3(-1, -1, 0), Normal: core.NewVec3(0, 0, 1)},
		{Position: core.NewVec3(1, -1, 0), Normal: core.NewVec3(0, 0, 1)},
		{Position: core.NewVec3(0, 1, 0), Normal: core.NewVec3(0, 0, 1)},
		{Position: core.NewVec3(-1, -1, 2), Normal: core.NewVec3(0, 0, 1)},
		{Position: core.NewVec3(1, -1, 2), Normal: core.NewVec3(0, 0, 1)},
		{Position: core.NewVec3(0, 1, 2), Normal: core.NewVec3(0, 0, 1)},
	}
	body := NewMeshBody(vertices, []int{0, 1, 2, 3, 4, 5}, MockMaterial{})

	hit, isHit := body.Intersect(core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.Distance-8) > 1e-9 {
		t.Errorf("Expected the nearer triangle at t=8, got t=%f", hit.Distance)
	}
}

func TestMeshBody_NormalsUnderNonUniformScale(t *testing.T) {
	sphere := NewSphere(32, 32, MockMaterial{})
	sphere.SetTransform(mgl64.Scale3D(1, 4, 1))

	// Shooting at the equator from +X the shading normal must stay horizontal
	hit, isHit := sphere.Intersect(core.NewRay(core.NewVec3(5, 0.01, 0.01), core.NewVec3(-1, 0, 0)))
	if !isHit {
		t.Fatal("Expected a hit")
	}
	if hit.InterpolatedNormal.X < 0.99 {
		t.Errorf("Expected a normal close to +X, got %v", hit.InterpolatedNormal)
	}
	if math.Abs(hit.InterpolatedNormal.Length()-1) > 1e-9 {
		t.Errorf("Expected a unit normal, got length %f", hit.InterpolatedNormal.Length())
	}
}

func TestMeshBody_FaceVersusInterpolatedNormal(t *testing.T) {
	sphere := NewSphere(6, 4, MockMaterial{})

	// A coarse sphere hit off a vertex: smooth and faceted normals differ
	ray := core.NewRay(core.NewVec3(3, 0.3, 0.4), core.NewVec3(-1, 0, 0))
	hit, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected a hit")
	}

	hitPoint := ray.At(hit.Distance)
	if hit.InterpolatedNormal.Dot(hitPoint) <= 0 || hit.FaceNormal.Dot(hitPoint) <= 0 {
		t.Errorf("Both normals should point outward, got %v and %v", hit.InterpolatedNormal, hit.FaceNormal)
	}
	if vecAlmostEqual(hit.InterpolatedNormal, hit.FaceNormal, 1e-6) {
		t.Error("Expected smooth and faceted normals to differ on a coarse sphere")
	}
}

// Any ray that hits a triangle directly must also pass the body's box test
func TestMeshBody_BoundingBoxHasNoFalseNegatives(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	bodies := []*MeshBody{
		NewSphere(12, 8, MockMaterial{}),
		NewCube(1, 4, 1, MockMaterial{}),
		NewTetrahedron(MockMaterial{}),
		NewQuad(MockMaterial{}),
	}

	for bi, body := range bodies {
		body.SetTransform(Compose(
			mgl64.Vec3{0.5 + random.Float64()*3, 0.5 + random.Float64()*3, 0.5 + random.Float64()*3},
			mgl64.Vec3{random.Float64() * math.Pi, random.Float64() * math.Pi, random.Float64() * math.Pi},
			mgl64.Vec3{random.Float64()*4 - 2, random.Float64()*4 - 2, random.Float64()*4 - 2},
		))
		inverse := body.Transform().Inv()

		hits := 0
		for i := 0; i < 400; i++ {
			origin := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
			// Aim near the body's center so a good share of rays hit
			target := body.WorldBoundingBox().Center().Add(core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1))
			ray := core.NewRay(origin, target.Subtract(origin).Normalize())

			direct := false
			for f := 0; f < body.FaceCount(); f++ {
				p0, p1, p2 := body.Triangle(f)
				if _, ok := core.IntersectTriangle(ray, p0, p1, p2); ok {
					direct = true
					break
				}
			}
			if !direct {
				continue
			}
			hits++

			if _, ok := body.BoundingBox().IntersectsRay(ray.Transform(inverse)); !ok {
				t.Fatalf("body %d: ray %v hits a triangle but fails the box test", bi, ray)
			}
			if _, ok := body.Intersect(ray); !ok {
				t.Fatalf("body %d: ray %v hits a triangle but Intersect reports a miss", bi, ray)
			}
		}
		if hits == 0 {
			t.Errorf("body %d: no ray hit the body, test is vacuous", bi)
		}
	}
}

func TestMeshBody_SetTransformMovesBody(t *testing.T) {
	cube := NewCube(1, 1, 1, MockMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))

	if _, isHit := cube.Intersect(ray); !isHit {
		t.Fatal("Expected a hit at the origin")
	}

	cube.SetTransform(mgl64.Translate3D(5, 0, 0))
	if _, isHit := cube.Intersect(ray); isHit {
		t.Error("Expected a miss after moving the cube away")
	}

	world := cube.WorldBoundingBox()
	if !vecAlmostEqual(world.Center(), core.NewVec3(5, 0, 0), 1e-9) {
		t.Errorf("Expected world box centered at (5,0,0), got %v", world.Center())
	}
}
