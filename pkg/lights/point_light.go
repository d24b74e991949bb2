package lights

import (
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// PointLight emits its color evenly in every direction from a small disc of sub-points
type PointLight struct {
	position core.Vec3
	color    core.Vec3
	points   []core.Vec3
}

// NewPointLight creates a point light with the default emission pattern
func NewPointLight(position, color core.Vec3) *PointLight {
	return &PointLight{
		position: position,
		color:    color,
		points:   DefaultEmissionPattern(),
	}
}

// WithPattern replaces the emission pattern and returns the light
func (pl *PointLight) WithPattern(points []core.Vec3) *PointLight {
	pl.points = points
	return pl
}

// Position returns the center of the light
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// Color returns the total emitted color
func (pl *PointLight) Color() core.Vec3 {
	return pl.color
}

// EmissionPoints returns the sub-point offsets
func (pl *PointLight) EmissionPoints() []core.Vec3 {
	return pl.points
}

// LightInfos implements core.Light
func (pl *PointLight) LightInfos(scene core.Scene, hitPosition core.Vec3, epsilon float64) []core.LightInfo {
	return GatherLightInfos(scene, pl.position, pl.points, hitPosition, epsilon, func(core.Vec3) core.Vec3 {
		return pl.color
	})
}
