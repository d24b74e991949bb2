package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// Vertex is one entry of a mesh's vertex buffer
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
	TexCoord core.Vec2
}

// MeshBody is an indexed triangle list with a model transform and a material.
// Vertex and index buffers are immutable after construction. Intersection
// uses the object-space bounding box as its only acceleration structure and
// scans every triangle once the box test passes.
type MeshBody struct {
	positions []core.Vec3 // Object space
	normals   []core.Vec3 // Object space
	texCoords []core.Vec2
	indices   []int
	bbox      core.AABB // Object space, computed once

	placement      Placement
	worldPositions []core.Vec3 // positions under the current placement

	Material core.Material
}

// NewMeshBody creates a body from a vertex buffer and a triangle index list
// indices: each group of 3 indices forms a triangle
func NewMeshBody(vertices []Vertex, indices []int, material core.Material) *MeshBody {
	if len(indices)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}
	if len(vertices) == 0 {
		panic("Mesh requires at least one vertex")
	}
	if material == nil {
		panic("Mesh requires a material")
	}
	for _, index := range indices {
		if index < 0 || index >= len(vertices) {
			panic("Face index out of bounds")
		}
	}

	mb := &MeshBody{
		positions: make([]core.Vec3, len(vertices)),
		normals:   make([]core.Vec3, len(vertices)),
		texCoords: make([]core.Vec2, len(vertices)),
		indices:   append([]int(nil), indices...),
		Material:  material,
	}
	for i, v := range vertices {
		mb.positions[i] = v.Position
		mb.normals[i] = v.Normal
		mb.texCoords[i] = v.TexCoord
	}
	mb.bbox = core.NewAABBFromPoints(mb.positions...)

	mb.SetTransform(mgl64.Ident4())
	return mb
}

// SetTransform replaces the model transform. It must not be called while a
// trace pass is reading the body.
func (mb *MeshBody) SetTransform(transform mgl64.Mat4) {
	mb.placement.Set(transform)

	if mb.worldPositions == nil {
		mb.worldPositions = make([]core.Vec3, len(mb.positions))
	}
	for i, p := range mb.positions {
		mb.worldPositions[i] = p.TransformPoint(transform)
	}
}

// Transform returns the current model transform
func (mb *MeshBody) Transform() mgl64.Mat4 {
	return mb.placement.Transform()
}

// BoundingBox returns the object-space bounding box
func (mb *MeshBody) BoundingBox() core.AABB {
	return mb.bbox
}

// WorldBoundingBox returns the box enclosing the transformed object-space box
func (mb *MeshBody) WorldBoundingBox() core.AABB {
	corners := mb.bbox.Corners()
	for i := range corners {
		corners[i] = corners[i].TransformPoint(mb.placement.Transform())
	}
	return core.NewAABBFromPoints(corners[:]...)
}

// FaceCount returns the number of triangles in this body
func (mb *MeshBody) FaceCount() int {
	return len(mb.indices) / 3
}

// VertexCount returns the number of vertices in this body
func (mb *MeshBody) VertexCount() int {
	return len(mb.positions)
}

// Triangle returns the world-space corners of face i
func (mb *MeshBody) Triangle(i int) (core.Vec3, core.Vec3, core.Vec3) {
	return mb.worldPositions[mb.indices[i*3]],
		mb.worldPositions[mb.indices[i*3+1]],
		mb.worldPositions[mb.indices[i*3+2]]
}

// Intersect returns the closest hit of a world-space ray with this body
func (mb *MeshBody) Intersect(ray core.Ray) (core.HitInfo, bool) {
	// Box test in object space
	localRay := ray.Transform(mb.placement.Inverse())
	if _, ok := mb.bbox.IntersectsRay(localRay); !ok {
		return core.HitInfo{}, false
	}

	closest := -1
	minT := math.Inf(1)
	var closestCoords core.BarycentricCoordinates

	for i := 0; i < len(mb.indices); i += 3 {
		p0 := mb.worldPositions[mb.indices[i]]
		p1 := mb.worldPositions[mb.indices[i+1]]
		p2 := mb.worldPositions[mb.indices[i+2]]

		if coords, ok := core.IntersectTriangle(ray, p0, p1, p2); ok && coords.T < minT {
			minT = coords.T
			closest = i
			closestCoords = coords
		}
	}

	if closest < 0 {
		return core.HitInfo{}, false
	}
	return mb.hitInfo(closest, closestCoords), true
}

// hitInfo builds the shading record for the triangle starting at index offset i
func (mb *MeshBody) hitInfo(i int, coords core.BarycentricCoordinates) core.HitInfo {
	i0, i1, i2 := mb.indices[i], mb.indices[i+1], mb.indices[i+2]

	p0 := mb.worldPositions[i0]
	p1 := mb.worldPositions[i1]
	p2 := mb.worldPositions[i2]

	objectNormal := coords.InterpolateVec3(mb.normals[i0], mb.normals[i1], mb.normals[i2])
	normal := core.FromMgl(mb.placement.NormalMatrix().Mul3x1(objectNormal.ToMgl())).Normalize()
	faceNormal := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	texturePos := coords.InterpolateVec2(mb.texCoords[i0], mb.texCoords[i1], mb.texCoords[i2])

	return core.HitInfo{
		Distance:           coords.T,
		InterpolatedNormal: normal,
		FaceNormal:         faceNormal,
		TexturePos:         texturePos,
		Material:           mb.Material,
	}
}
