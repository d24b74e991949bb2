package lights

import (
	"math"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// DefaultRingSamples is the number of emission sub-points on each ring
const DefaultRingSamples = 6

// DefaultEmissionPattern returns the disc used by lights unless told otherwise:
// the center plus six points on rings of radius 0.1 and 0.2
func DefaultEmissionPattern() []core.Vec3 {
	return DiscPattern([]float64{0.1, 0.2}, DefaultRingSamples)
}

// DiscPattern returns offsets forming a horizontal disc: the center followed
// by count evenly spaced points on each ring, starting on the +X axis
func DiscPattern(radii []float64, count int) []core.Vec3 {
	points := make([]core.Vec3, 0, 1+len(radii)*count)
	points = append(points, core.Vec3{})

	for _, radius := range radii {
		for i := 0; i < count; i++ {
			angle := 2 * math.Pi * float64(i) / float64(count)
			points = append(points, core.NewVec3(radius*math.Cos(angle), 0, radius*math.Sin(angle)))
		}
	}

	return points
}
