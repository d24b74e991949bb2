package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/photonlab/go-photon-tracer/pkg/core"
	"github.com/photonlab/go-photon-tracer/pkg/geometry"
	"github.com/photonlab/go-photon-tracer/pkg/lights"
	"github.com/photonlab/go-photon-tracer/pkg/material"
)

// NewPlaneScene creates a glass sphere on a large checkerboard floor under a
// narrow spot light. Animation orbits the camera around the sphere.
func NewPlaneScene(aspectRatio float64) *Scene {
	target := core.NewVec3(0, 5, 0)
	orbit := func(frame int) core.Camera {
		angle := float64(frame) * math.Pi / 30
		position := core.NewVec3(-10*math.Sin(angle), 10, -10*math.Cos(angle))
		return core.NewLookAtCamera(position, target, core.NewVec3(0, 1, 0), 70, aspectRatio)
	}

	s := NewScene(orbit(0))
	s.AddLight(lights.NewSpotLight(core.NewVec3(0, 30, 0), core.NewVec3(0, -1, 0), 5, LightYellow))

	floorMaterial := material.NewTexturedPhong(material.NewCheckerboardTexture(200, 200, 2, White, core.NewVec3(0.1, 0.1, 0.1)))
	floorMaterial.AmbientStrength = 0
	floorMaterial.NormalMode = core.NormalModeFace
	s.Floor = wall(100, mgl64.Vec3{-math.Pi / 2, 0, 0}, mgl64.Vec3{}, floorMaterial)
	s.AddBody(s.Floor)

	sphere := geometry.NewSphere(30, 30, material.NewTransparent(White))
	sphere.SetTransform(geometry.Compose(mgl64.Vec3{4, 4, 4}, mgl64.Vec3{}, mgl64.Vec3{0, 5, 0}))
	s.AddBody(sphere)

	s.Animation = func(frame int) {
		s.Camera = orbit(frame)
	}

	return s
}

// NewMirrorSphereScene creates a unit mirror sphere hovering over a floor
// with a smooth gradient texture, lit by one point light overhead
func NewMirrorSphereScene(aspectRatio float64) *Scene {
	return newMirrorSphereScene(aspectRatio, 64, 32)
}

// newMirrorSphereScene builds the mirror sphere scene with the given sphere tessellation
func newMirrorSphereScene(aspectRatio float64, segments, rings int) *Scene {
	s := NewScene(core.NewLookAtCamera(
		core.NewVec3(0, 4, -8),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		60,
		aspectRatio,
	))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 10, 0), White).WithPattern(lights.DiscPattern([]float64{0.15, 0.3}, 8)))

	floor := material.NewTexturedDiffuse(material.NewGradientTexture(4, 256, rgb(70, 130, 180), rgb(245, 222, 179)))
	s.Floor = wall(20, mgl64.Vec3{-math.Pi / 2, 0, 0}, mgl64.Vec3{}, floor)
	s.AddBody(s.Floor)

	sphere := geometry.NewSphere(segments, rings, material.NewMirror(White, 1))
	sphere.SetTransform(mgl64.Translate3D(0, 2, 0))
	s.AddBody(sphere)

	return s
}
