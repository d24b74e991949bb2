package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/photonlab/go-photon-tracer/pkg/core"
	"github.com/photonlab/go-photon-tracer/pkg/material"
)

// TextureOptions controls how decoded images become textures
type TextureOptions struct {
	MaxSize int // Largest allowed width or height; larger images are downscaled (0 = no limit)
}

// DefaultTextureOptions returns sensible default values
func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		MaxSize: 0,
	}
}

// LoadTexture decodes a PNG, JPEG, BMP, TIFF or WebP file into a texture
func LoadTexture(filename string, options TextureOptions) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	texture, err := DecodeTexture(file, options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return texture, nil
}

// DecodeTexture decodes an image stream into a texture. The format is
// detected from the stream header.
func DecodeTexture(r io.Reader, options TextureOptions) (*material.ImageTexture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}

	if options.MaxSize > 0 && (bounds.Dx() > options.MaxSize || bounds.Dy() > options.MaxSize) {
		img = downscale(img, options.MaxSize)
		bounds = img.Bounds()
	}

	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}

// downscale fits img into a maxSize square keeping its aspect ratio
func downscale(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width >= height {
		height = max(1, height*maxSize/width)
		width = maxSize
	} else {
		width = max(1, width*maxSize/height)
		height = maxSize
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
