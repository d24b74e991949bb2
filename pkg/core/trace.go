package core

// TraceConfig holds the tunables shared by the tracer and the materials
type TraceConfig struct {
	MaxDepth int     // Deepest recursion level that is still shaded
	Epsilon  float64 // Offset along the normal for shadow and secondary rays
}

// DefaultTraceConfig returns sensible default values
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxDepth: 2,
		Epsilon:  1e-4,
	}
}

// Trace returns the radiance arriving along ray. Beyond the configured
// maximum depth, or when nothing is hit, the result is black. A hit without
// a material panics.
func Trace(scene Scene, ray Ray, depth int) Vec3 {
	if depth > scene.GetTraceConfig().MaxDepth {
		return Vec3{}
	}

	hit, isHit := scene.Intersect(ray)
	if !isHit {
		return Vec3{}
	}
	if hit.Material == nil {
		panic("hit has no material")
	}

	return hit.Material.Shade(scene, depth, ray, hit)
}
