package material

import (
	"math"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// Reflect mirrors v about the plane with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// OffsetOrigin moves point by epsilon along normal, onto the side that
// direction leaves through
func OffsetOrigin(point, normal, direction core.Vec3, epsilon float64) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(epsilon))
	}
	return point.Add(normal.Multiply(epsilon))
}

// Refraction is the outcome of Snell's law at a dielectric boundary
type Refraction struct {
	Direction     core.Vec3 // Transmitted direction, zero on total internal reflection
	Cosi          float64   // Cosine between the ray and the normal facing it, in [-1, 0]
	Etai, Etat    float64   // Indices on the incident and transmitted side
	TotalInternal bool      // Total internal reflection, nothing is transmitted
}

// Refract bends the unit direction d at a boundary whose normal n points
// toward the medium with index etaOutside
func Refract(d, n core.Vec3, etaOutside, etaInside float64) Refraction {
	cosi := math.Max(-1, math.Min(1, d.Dot(n)))
	etai, etat := etaOutside, etaInside

	// Leaving the medium. cosi stays measured against the flipped normal, so
	// eta*cosi + sqrt(k) uses the same sign on both sides of the boundary.
	if cosi > 0 {
		etai, etat = etat, etai
		n = n.Negate()
		cosi = -cosi
	}

	r := Refraction{Cosi: cosi, Etai: etai, Etat: etat}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		r.TotalInternal = true
		return r
	}

	r.Direction = d.Multiply(eta).Subtract(n.Multiply(eta*cosi + math.Sqrt(k))).Normalize()
	return r
}

// SchlickFresnel approximates the reflected fraction at a boundary between
// indices etai and etat
func SchlickFresnel(cosi, etai, etat float64) float64 {
	r0 := (etai - etat) / (etai + etat)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-math.Abs(cosi), 5)
}

// LightingWeights scales the terms of the direct lighting sum
type LightingWeights struct {
	Diffuse      float64
	Specular     float64
	SpecExponent float64
}

// DirectLighting sums the diffuse and specular response at position to every
// emission sub-point that is visible from it. Shadow rays start at position
// offset along normal by the scene's epsilon.
func DirectLighting(scene core.Scene, position, normal, view, albedo core.Vec3, weights LightingWeights) core.Vec3 {
	epsilon := scene.GetTraceConfig().Epsilon
	shadowOrigin := position.Add(normal.Multiply(epsilon))

	var color core.Vec3
	for _, light := range scene.GetLights() {
		for _, info := range light.LightInfos(scene, shadowOrigin, epsilon) {
			if weights.Diffuse > 0 {
				nDotL := math.Max(normal.Dot(info.Direction), 0)
				color = color.Add(info.Color.MultiplyVec(albedo).Multiply(weights.Diffuse * nDotL))
			}

			if weights.Specular > 0 {
				r := Reflect(info.Direction.Negate(), normal)
				rDotV := math.Pow(math.Max(r.Dot(view), 0), weights.SpecExponent)
				color = color.Add(info.Color.Multiply(weights.Specular * rDotV))
			}
		}
	}

	return color
}

// ambientTerm is the constant fill light, (1/pi) * strength * color * albedo
func ambientTerm(strength float64, color, albedo core.Vec3) core.Vec3 {
	return color.MultiplyVec(albedo).Multiply(strength / math.Pi)
}
