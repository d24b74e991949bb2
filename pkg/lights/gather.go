package lights

import (
	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// GatherLightInfos casts one shadow ray per emission sub-point of a light
// centered at center and returns the unoccluded samples. A sample is occluded
// when the scene reports a hit farther than epsilon but closer than the
// sub-point. emit gives the color a sub-point sends along the unit direction
// from the surface toward it; samples with zero color are skipped. Each
// sample carries 1/N of that color so a fully visible light sums to it once.
func GatherLightInfos(scene core.Scene, center core.Vec3, points []core.Vec3, hitPosition core.Vec3, epsilon float64, emit func(toLight core.Vec3) core.Vec3) []core.LightInfo {
	if len(points) == 0 {
		return nil
	}
	weight := 1.0 / float64(len(points))

	infos := make([]core.LightInfo, 0, len(points))
	for _, offset := range points {
		toLight := center.Add(offset).Subtract(hitPosition)
		distance := toLight.Length()
		if distance == 0 {
			continue
		}
		direction := toLight.Multiply(1 / distance)

		color := emit(direction)
		if color.IsZero() {
			continue
		}

		if hit, isHit := scene.Intersect(core.NewRay(hitPosition, direction)); isHit {
			if hit.Distance < distance && hit.Distance > epsilon {
				continue
			}
		}

		infos = append(infos, core.LightInfo{
			Color:     color.Multiply(weight),
			Direction: direction,
			Distance:  distance,
		})
	}

	return infos
}
