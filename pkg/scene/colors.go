package scene

import "github.com/photonlab/go-photon-tracer/pkg/core"

// Named colors used by the built-in scenes
var (
	White       = core.NewVec3(1, 1, 1)
	Gray        = rgb(128, 128, 128)
	Red         = core.NewVec3(1, 0, 0)
	MediumBlue  = rgb(0, 0, 205)
	LimeGreen   = rgb(50, 205, 50)
	Orange      = rgb(255, 165, 0)
	Yellow      = core.NewVec3(1, 1, 0)
	LightYellow = rgb(255, 255, 224)
)

func rgb(r, g, b uint8) core.Vec3 {
	return core.NewVec3(float64(r)/255, float64(g)/255, float64(b)/255)
}
