package renderer

import (
	"math"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// GeneratePixelRay returns the primary ray through the center of pixel (x, y)
// of a width x height image. Row 0 is the top of the image. The image plane
// sits at unit distance with height 2*tan(fov/2); a camera without an aspect
// ratio uses width/height.
func GeneratePixelRay(camera core.Camera, x, y, width, height int) core.Ray {
	aspectRatio := camera.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = float64(width) / float64(height)
	}

	planeHeight := 2 * math.Tan(camera.Fov/2)
	planeWidth := planeHeight * aspectRatio

	u := (float64(x)+0.5)/float64(width) - 0.5
	v := 0.5 - (float64(y)+0.5)/float64(height)

	direction := camera.Forward.
		Add(camera.Right.Multiply(u * planeWidth)).
		Add(camera.Up.Multiply(v * planeHeight)).
		Normalize()

	return core.NewRay(camera.Position, direction)
}

// GenerateCameraRays fills rays, row-major with len width*height, with the
// primary ray of every pixel
func GenerateCameraRays(camera core.Camera, width, height int, rays []core.Ray) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rays[y*width+x] = GeneratePixelRay(camera, x, y, width, height)
		}
	}
}
