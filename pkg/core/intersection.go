package core

import "math"

// ParallelEpsilon is the determinant magnitude below which a ray is treated
// as parallel to a triangle's plane
const ParallelEpsilon = 1e-5

// BarycentricCoordinates locates a point on a triangle and the ray parameter
// at which it was reached
type BarycentricCoordinates struct {
	B0, B1, B2 float64 // Weights of vertices 0, 1 and 2
	T          float64 // Ray parameter of the point
}

// NewBarycentricCoordinates derives B0 from b1 and b2
func NewBarycentricCoordinates(b1, b2, t float64) BarycentricCoordinates {
	return BarycentricCoordinates{
		B0: 1 - b1 - b2,
		B1: b1,
		B2: b2,
		T:  t,
	}
}

// Inside reports whether the point lies in front of the ray origin and within the triangle
func (bc BarycentricCoordinates) Inside() bool {
	return bc.T > 0 && bc.B1 >= 0 && bc.B2 >= 0 && bc.B1+bc.B2 <= 1
}

// InterpolateVec3 blends three per-vertex values with the barycentric weights
func (bc BarycentricCoordinates) InterpolateVec3(v0, v1, v2 Vec3) Vec3 {
	return v0.Multiply(bc.B0).Add(v1.Multiply(bc.B1)).Add(v2.Multiply(bc.B2))
}

// InterpolateVec2 blends three per-vertex values with the barycentric weights
func (bc BarycentricCoordinates) InterpolateVec2(v0, v1, v2 Vec2) Vec2 {
	return v0.Multiply(bc.B0).Add(v1.Multiply(bc.B1)).Add(v2.Multiply(bc.B2))
}

// IntersectTriangle tests the ray against triangle (p0, p1, p2) using the
// Möller-Trumbore algorithm. Near-parallel rays report no intersection.
func IntersectTriangle(ray Ray, p0, p1, p2 Vec3) (BarycentricCoordinates, bool) {
	e1 := p1.Subtract(p0)
	e2 := p2.Subtract(p0)
	s := ray.Origin.Subtract(p0)

	dCrossE2 := ray.Direction.Cross(e2)
	det := dCrossE2.Dot(e1)
	if math.Abs(det) < ParallelEpsilon {
		return BarycentricCoordinates{}, false
	}

	invDet := 1.0 / det
	sCrossE1 := s.Cross(e1)

	t := sCrossE1.Dot(e2) * invDet
	b1 := dCrossE2.Dot(s) * invDet
	b2 := sCrossE1.Dot(ray.Direction) * invDet

	coords := NewBarycentricCoordinates(b1, b2, t)
	return coords, coords.Inside()
}
