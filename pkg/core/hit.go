package core

import "math"

// NormalMode selects which normal a material shades with
type NormalMode int

const (
	// NormalModeInterpolated uses the per-vertex normals blended at the hit point
	NormalModeInterpolated NormalMode = iota
	// NormalModeFace uses the geometric normal of the hit triangle
	NormalModeFace
)

// String returns the name of the normal mode
func (m NormalMode) String() string {
	switch m {
	case NormalModeInterpolated:
		return "interpolated"
	case NormalModeFace:
		return "face"
	default:
		return "unknown"
	}
}

// HitInfo is the result of a ray-body intersection
type HitInfo struct {
	Distance           float64  // Ray parameter of the hit
	InterpolatedNormal Vec3     // Smooth shading normal
	FaceNormal         Vec3     // Geometric normal of the triangle
	TexturePos         Vec2     // Interpolated texture coordinates
	Material           Material // Material responsible for shading
}

// NoHit returns the sentinel hit with infinite distance
func NoHit() HitInfo {
	return HitInfo{Distance: math.Inf(1)}
}

// Less orders hits by distance
func (h HitInfo) Less(other HitInfo) bool {
	return h.Distance < other.Distance
}

// LessOrEqual orders hits by distance
func (h HitInfo) LessOrEqual(other HitInfo) bool {
	return h.Distance <= other.Distance
}

// Normal returns the normal selected by mode. An unknown mode is a
// programming error in the material and panics.
func (h HitInfo) Normal(mode NormalMode) Vec3 {
	switch mode {
	case NormalModeInterpolated:
		return h.InterpolatedNormal
	case NormalModeFace:
		return h.FaceNormal
	default:
		panic("unsupported normal mode: " + mode.String())
	}
}

// Position returns the world-space hit point along ray
func (h HitInfo) Position(ray Ray) Vec3 {
	return ray.At(h.Distance)
}
