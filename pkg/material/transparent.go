package material

import (
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// Transparent is a dielectric that both reflects and refracts, blended by
// Schlick's Fresnel term. The surrounding medium has index 1.
type Transparent struct {
	Surface                   // Color tints the result
	RefractiveIndex   float64 // Index of the medium behind the outward normal
	ReflectedStrength float64 // Scale on the reflected branch
}

// NewTransparent creates a clear dielectric with the given tint
func NewTransparent(tint core.Vec3) *Transparent {
	return &Transparent{
		Surface:           Surface{Color: tint},
		RefractiveIndex:   1.2,
		ReflectedStrength: 1,
	}
}

// Shade implements core.Material
func (t *Transparent) Shade(scene core.Scene, depth int, ray core.Ray, hit core.HitInfo) core.Vec3 {
	n := hit.Normal(t.NormalMode)
	position := hit.Position(ray)
	epsilon := scene.GetTraceConfig().Epsilon

	reflectDir := Reflect(ray.Direction, n).Normalize()
	reflectedRay := core.NewRay(OffsetOrigin(position, n, reflectDir, epsilon), reflectDir)
	reflected := core.Trace(scene, reflectedRay, depth+1).Multiply(t.ReflectedStrength)

	// Refract orients n and cosi itself; Cosi comes back against the flipped normal on exit
	refraction := Refract(ray.Direction, n, 1, t.RefractiveIndex)

	var refracted core.Vec3
	if !refraction.TotalInternal {
		refractedRay := core.NewRay(OffsetOrigin(position, n, refraction.Direction, epsilon), refraction.Direction)
		refracted = core.Trace(scene, refractedRay, depth+1)
	}

	fresnel := SchlickFresnel(refraction.Cosi, refraction.Etai, refraction.Etat)
	color := reflected.Multiply(fresnel).Add(refracted.Multiply(1 - fresnel))

	return t.Albedo(hit.TexturePos).MultiplyVec(color)
}
