package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// IntersectsRay tests the ray against the box using the slab method.
// It returns the entry distance (negative when the origin is inside the box)
// and false when the slab interval is empty or lies entirely behind the origin.
func (aabb AABB) IntersectsRay(ray Ray) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		lo := aabb.Min.Component(axis)
		hi := aabb.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		// Parallel to this slab: inside or never
		if math.Abs(direction) < 1e-12 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		if invDirection < 0 {
			lo, hi = hi, lo
		}
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection

		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	return tMin, true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Corners returns the eight corners of the box
func (aabb AABB) Corners() [8]Vec3 {
	lo, hi := aabb.Min, aabb.Max
	return [8]Vec3{
		{lo.X, hi.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{lo.X, lo.Y, hi.Z},
		{lo.X, hi.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{lo.X, lo.Y, lo.Z},
	}
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
