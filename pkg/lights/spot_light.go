package lights

import (
	"math"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// DefaultSpotFalloff is the exponent of the angular falloff
const DefaultSpotFalloff = 5.0

// SpotLight is a point light whose color falls off away from its cone axis
type SpotLight struct {
	position     core.Vec3
	direction    core.Vec3 // Normalized cone axis
	color        core.Vec3
	halfAngle    float64 // Radians
	cosHalfAngle float64
	points       []core.Vec3

	Falloff float64 // Exponent applied to cos(angle)/cos(halfAngle)
}

// NewSpotLight creates a spot light at position aimed along direction.
// halfAngleDegrees is the angle at which the falloff term reaches 1 and
// must lie in (0, 90).
func NewSpotLight(position, direction core.Vec3, halfAngleDegrees float64, color core.Vec3) *SpotLight {
	if halfAngleDegrees <= 0 || halfAngleDegrees >= 90 {
		panic("Spot light half-angle must be between 0 and 90 degrees")
	}
	if direction.IsZero() {
		panic("Spot light direction must not be zero")
	}
	halfAngle := halfAngleDegrees * math.Pi / 180.0
	return &SpotLight{
		position:     position,
		direction:    direction.Normalize(),
		color:        color,
		halfAngle:    halfAngle,
		cosHalfAngle: math.Cos(halfAngle),
		points:       DefaultEmissionPattern(),
		Falloff:      DefaultSpotFalloff,
	}
}

// Position returns the center of the light
func (sl *SpotLight) Position() core.Vec3 {
	return sl.position
}

// Direction returns the cone axis
func (sl *SpotLight) Direction() core.Vec3 {
	return sl.direction
}

// Color returns the color emitted along the cone's edge
func (sl *SpotLight) Color() core.Vec3 {
	return sl.color
}

// HalfAngle returns the half-angle in radians
func (sl *SpotLight) HalfAngle() float64 {
	return sl.halfAngle
}

// EmissionPoints returns the sub-point offsets
func (sl *SpotLight) EmissionPoints() []core.Vec3 {
	return sl.points
}

// Attenuation returns (cos(angle)/cos(halfAngle))^Falloff, where angle lies
// between the cone axis and the direction from the light to the surface.
// The falloff continues smoothly past the half-angle; surfaces at or behind
// the light's plane receive nothing.
func (sl *SpotLight) Attenuation(toLight core.Vec3) float64 {
	cosAngle := math.Max(-1, math.Min(1, toLight.Negate().Dot(sl.direction)))
	if cosAngle <= 0 {
		return 0
	}
	return math.Pow(cosAngle/sl.cosHalfAngle, sl.Falloff)
}

// LightInfos implements core.Light
func (sl *SpotLight) LightInfos(scene core.Scene, hitPosition core.Vec3, epsilon float64) []core.LightInfo {
	return GatherLightInfos(scene, sl.position, sl.points, hitPosition, epsilon, func(toLight core.Vec3) core.Vec3 {
		return sl.color.Multiply(sl.Attenuation(toLight))
	})
}
