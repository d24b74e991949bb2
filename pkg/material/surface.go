package material

import (
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// Surface holds the inputs every material shares: a base color, an optional
// texture overriding it, and the normal used for shading
type Surface struct {
	Color      core.Vec3       // Base diffuse color
	Texture    ColorSource     // Optional
	NormalMode core.NormalMode // Face or interpolated normal
}

// DiffuseColor returns the base color
func (s Surface) DiffuseColor() core.Vec3 {
	return s.Color
}

// Albedo returns the texture sample at uv, or the base color without a texture
func (s Surface) Albedo(uv core.Vec2) core.Vec3 {
	if s.Texture == nil {
		return s.Color
	}
	return s.Texture.Evaluate(uv)
}

// SetTexture binds a texture, or restores the base color when texture is nil
func (s *Surface) SetTexture(texture ColorSource) {
	s.Texture = texture
}
