package core

import "math"

// Camera is a pinhole camera with an orthonormal basis. It is owned by the
// host and read-only while tracing.
type Camera struct {
	Position    Vec3
	Forward     Vec3
	Right       Vec3
	Up          Vec3
	Fov         float64 // Vertical field of view in radians
	AspectRatio float64 // Width over height
}

// NewLookAtCamera builds a camera at position looking at target
func NewLookAtCamera(position, target, worldUp Vec3, fovDegrees, aspectRatio float64) Camera {
	forward := target.Subtract(position).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	return Camera{
		Position:    position,
		Forward:     forward,
		Right:       right,
		Up:          up,
		Fov:         fovDegrees * math.Pi / 180.0,
		AspectRatio: aspectRatio,
	}
}
