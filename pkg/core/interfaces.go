package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Material shades a surface hit. Shade may recurse into Trace at depth+1.
type Material interface {
	Shade(scene Scene, depth int, ray Ray, hit HitInfo) Vec3

	// DiffuseColor is the base color used when no texture is bound
	DiffuseColor() Vec3
}

// LightInfo describes the light reaching a surface point from one emission sub-point
type LightInfo struct {
	Color     Vec3    // Arriving color, already attenuated
	Direction Vec3    // Unit direction from the surface point toward the light
	Distance  float64 // Distance to the emission sub-point
}

// Light is a source sampled through a fixed pattern of emission sub-points
type Light interface {
	// Position returns the center of the light
	Position() Vec3

	// EmissionPoints returns the offsets of the sub-points relative to Position
	EmissionPoints() []Vec3

	// LightInfos returns one entry per sub-point that is visible from hitPosition
	LightInfos(scene Scene, hitPosition Vec3, epsilon float64) []LightInfo
}

// Scene is the read-only view of a scene used while tracing
type Scene interface {
	// Intersect returns the closest hit over all bodies
	Intersect(ray Ray) (HitInfo, bool)
	GetLights() []Light
	GetCamera() Camera
	GetTraceConfig() TraceConfig
}
