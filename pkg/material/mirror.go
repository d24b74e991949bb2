package material

import (
	"math"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// Mirror reflects the incoming ray and tints what it sees
type Mirror struct {
	Surface
	Reflectivity float64 // Clamped to [0, 1]

	// Optional highlight from the scene's lights; zero disables it
	SpecularStrength float64
	SpecExponent     float64
}

// NewMirror creates a mirror with the given tint and reflectivity
func NewMirror(color core.Vec3, reflectivity float64) *Mirror {
	return &Mirror{
		Surface:      Surface{Color: color},
		Reflectivity: math.Max(0, math.Min(1, reflectivity)),
		SpecExponent: 40,
	}
}

// NewGlossyMirror creates a mirror that also shows specular highlights
func NewGlossyMirror(color core.Vec3, reflectivity, specularStrength float64) *Mirror {
	m := NewMirror(color, reflectivity)
	m.SpecularStrength = specularStrength
	return m
}

// Shade implements core.Material
func (m *Mirror) Shade(scene core.Scene, depth int, ray core.Ray, hit core.HitInfo) core.Vec3 {
	n := hit.Normal(m.NormalMode)
	position := hit.Position(ray)
	epsilon := scene.GetTraceConfig().Epsilon

	reflectDir := Reflect(ray.Direction, n).Normalize()
	reflectedRay := core.NewRay(OffsetOrigin(position, n, reflectDir, epsilon), reflectDir)
	reflected := core.Trace(scene, reflectedRay, depth+1)

	color := m.Albedo(hit.TexturePos).MultiplyVec(reflected).Multiply(m.Reflectivity)

	if m.SpecularStrength > 0 {
		color = color.Add(DirectLighting(scene, position, n, ray.Direction.Negate(), core.Vec3{},
			LightingWeights{Specular: m.SpecularStrength, SpecExponent: m.SpecExponent}))
	}
	return color
}
