package geometry

import (
	"math"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// NewQuad creates a unit quad in the XY plane centered at the origin, facing +Z
func NewQuad(material core.Material) *MeshBody {
	const h = 0.5
	n := core.NewVec3(0, 0, 1)

	vertices := []Vertex{
		{Position: core.NewVec3(-h, -h, 0), Normal: n, TexCoord: core.NewVec2(0, 1)},
		{Position: core.NewVec3(h, -h, 0), Normal: n, TexCoord: core.NewVec2(1, 1)},
		{Position: core.NewVec3(h, h, 0), Normal: n, TexCoord: core.NewVec2(1, 0)},
		{Position: core.NewVec3(-h, h, 0), Normal: n, TexCoord: core.NewVec2(0, 0)},
	}

	return NewMeshBody(vertices, []int{1, 2, 0, 2, 3, 0}, material)
}

// NewCube creates a box centered at the origin with the given extents.
// Each face has its own vertices so face and interpolated normals agree.
func NewCube(sizeX, sizeY, sizeZ float64, material core.Material) *MeshBody {
	size := core.NewVec3(sizeX, sizeY, sizeZ)

	faces := []struct {
		normal core.Vec3
		up     core.Vec3
	}{
		{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec3(-1, 0, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1)},
		{core.NewVec3(0, -1, 0), core.NewVec3(0, 0, 1)},
		{core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0)},
		{core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)},
	}

	vertices := make([]Vertex, 0, 24)
	indices := make([]int, 0, 36)

	for _, face := range faces {
		// right x up points along the outward normal, keeping the winding counter-clockwise
		right := face.up.Cross(face.normal)
		center := face.normal.Multiply(0.5)
		u := right.Multiply(0.5)
		v := face.up.Multiply(0.5)

		base := len(vertices)
		corners := []struct {
			position core.Vec3
			uv       core.Vec2
		}{
			{center.Subtract(u).Subtract(v), core.NewVec2(0, 1)},
			{center.Add(u).Subtract(v), core.NewVec2(1, 1)},
			{center.Add(u).Add(v), core.NewVec2(1, 0)},
			{center.Subtract(u).Add(v), core.NewVec2(0, 0)},
		}
		for _, c := range corners {
			vertices = append(vertices, Vertex{
				Position: c.position.MultiplyVec(size),
				Normal:   face.normal,
				TexCoord: c.uv,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return NewMeshBody(vertices, indices, material)
}

// NewSphere creates a UV sphere of radius 1 centered at the origin
func NewSphere(segments, rings int, material core.Material) *MeshBody {
	if segments < 3 || rings < 2 {
		panic("Sphere requires at least 3 segments and 2 rings")
	}

	vertices := make([]Vertex, 0, (rings+1)*(segments+1))
	for y := 0; y <= rings; y++ {
		v := float64(y) / float64(rings)
		theta := v * math.Pi
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

		for x := 0; x <= segments; x++ {
			u := float64(x) / float64(segments)
			phi := u * 2 * math.Pi
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

			position := core.NewVec3(sinTheta*cosPhi, cosTheta, sinTheta*sinPhi)
			vertices = append(vertices, Vertex{
				Position: position,
				Normal:   position.Normalize(),
				TexCoord: core.NewVec2(u, v),
			})
		}
	}

	indices := make([]int, 0, rings*segments*6)
	for y := 0; y < rings; y++ {
		for x := 0; x < segments; x++ {
			first := y*(segments+1) + x
			second := first + segments + 1
			indices = append(indices,
				first, first+1, second,
				second, first+1, second+1,
			)
		}
	}

	return NewMeshBody(vertices, indices, material)
}

// NewTetrahedron creates a tetrahedron with unit edge length standing on the XZ plane
func NewTetrahedron(material core.Material) *MeshBody {
	s := 1.0
	h := math.Sqrt(3) / 2 * s

	positions := []core.Vec3{
		core.NewVec3(0, math.Sqrt(2.0/3.0)*s, 0),
		core.NewVec3(-s/2, 0, -h/3),
		core.NewVec3(s/2, 0, -h/3),
		core.NewVec3(0, 0, 2*h/3),
	}

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = Vertex{Position: p, Normal: p.Normalize()}
	}

	return NewMeshBody(vertices, []int{0, 2, 1, 0, 1, 3, 0, 3, 2, 1, 2, 3}, material)
}
