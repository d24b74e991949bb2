package material

import (
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// ImageTexture provides color from a pre-decoded 2D image.
// The pixel array is read-only once the texture is bound to a material.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], y=0 is the top row
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		panic("Texture pixel count must equal width*height")
	}
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the nearest pixel. UV is clamped to [0, 1] with V=0 at the top row.
func (t *ImageTexture) Evaluate(uv core.Vec2) core.Vec3 {
	uv = uv.Clamp(0, 1)

	x := int(uv.X * float64(t.Width-1))
	y := int(uv.Y * float64(t.Height-1))

	return t.Pixels[y*t.Width+x]
}
