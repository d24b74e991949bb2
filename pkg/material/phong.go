package material

import (
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// Phong adds a specular highlight to the diffuse model
type Phong struct {
	Surface
	AmbientColor     core.Vec3
	AmbientStrength  float64
	DiffuseStrength  float64
	SpecularStrength float64
	SpecExponent     float64 // Shininess
}

// NewPhong creates a Phong material with a solid color
func NewPhong(color core.Vec3) *Phong {
	return &Phong{
		Surface:          Surface{Color: color},
		AmbientColor:     core.NewVec3(1, 1, 1),
		AmbientStrength:  1,
		DiffuseStrength:  1,
		SpecularStrength: 1,
		SpecExponent:     40,
	}
}

// NewTexturedPhong creates a Phong material sampling its albedo from texture
func NewTexturedPhong(texture ColorSource) *Phong {
	p := NewPhong(core.NewVec3(1, 1, 1))
	p.Texture = texture
	return p
}

// Shade implements core.Material
func (p *Phong) Shade(scene core.Scene, depth int, ray core.Ray, hit core.HitInfo) core.Vec3 {
	n := hit.Normal(p.NormalMode)
	albedo := p.Albedo(hit.TexturePos)

	color := ambientTerm(p.AmbientStrength, p.AmbientColor, albedo)
	return color.Add(DirectLighting(scene, hit.Position(ray), n, ray.Direction.Negate(), albedo,
		LightingWeights{
			Diffuse:      p.DiffuseStrength,
			Specular:     p.SpecularStrength,
			SpecExponent: p.SpecExponent,
		}))
}
