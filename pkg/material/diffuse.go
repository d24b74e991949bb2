package material

import (
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// Diffuse is a matte surface lit by an ambient term and the scene's lights
type Diffuse struct {
	Surface
	AmbientColor    core.Vec3
	AmbientStrength float64
}

// NewDiffuse creates a diffuse material with a solid color
func NewDiffuse(color core.Vec3) *Diffuse {
	return &Diffuse{
		Surface:         Surface{Color: color},
		AmbientColor:    core.NewVec3(1, 1, 1),
		AmbientStrength: 1,
	}
}

// NewTexturedDiffuse creates a diffuse material sampling its albedo from texture
func NewTexturedDiffuse(texture ColorSource) *Diffuse {
	d := NewDiffuse(core.NewVec3(1, 1, 1))
	d.Texture = texture
	return d
}

// Shade implements core.Material
func (d *Diffuse) Shade(scene core.Scene, depth int, ray core.Ray, hit core.HitInfo) core.Vec3 {
	n := hit.Normal(d.NormalMode)
	albedo := d.Albedo(hit.TexturePos)

	color := ambientTerm(d.AmbientStrength, d.AmbientColor, albedo)
	return color.Add(DirectLighting(scene, hit.Position(ray), n, ray.Direction.Negate(), albedo,
		LightingWeights{Diffuse: 1}))
}
