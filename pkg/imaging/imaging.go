// Package imaging turns linear radiance buffers into displayable 8-bit images.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// DefaultGamma is the display gamma applied after tone mapping
const DefaultGamma = 2.2

// ToneMapReinhard compresses each channel into [0,1) with L / (1 + L).
// Negative values are treated as black.
func ToneMapReinhard(c core.Vec3) core.Vec3 {
	c = core.NewVec3(math.Max(c.X, 0), math.Max(c.Y, 0), math.Max(c.Z, 0))
	return core.NewVec3(c.X/(1+c.X), c.Y/(1+c.Y), c.Z/(1+c.Z))
}

// Quantize maps a [0,1] channel value to 8 bits with rounding
func Quantize(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}

// ToColor converts a linear radiance value to a display color
func ToColor(radiance core.Vec3) color.RGBA {
	c := ToneMapReinhard(radiance).GammaCorrect(DefaultGamma)
	return color.RGBA{
		R: Quantize(c.X),
		G: Quantize(c.Y),
		B: Quantize(c.Z),
		A: 255,
	}
}

// ToImage converts a row-major width x height radiance buffer to an image
func ToImage(radiance []core.Vec3, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(radiance) != width*height {
		return nil, fmt.Errorf("radiance buffer of %d values does not match %dx%d", len(radiance), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, ToColor(radiance[y*width+x]))
		}
	}
	return img, nil
}

// SavePNG writes img to filename, creating parent directories as needed
func SavePNG(img image.Image, filename string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}

// FrameFilename returns the output path of a frame. Single-frame renders use
// base unchanged; multi-frame renders insert a zero-padded frame number.
func FrameFilename(base string, frame, frames int) string {
	if frames <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%04d%s", base[:len(base)-len(ext)], frame, ext)
}
