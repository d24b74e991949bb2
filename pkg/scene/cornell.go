package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/photonlab/go-photon-tracer/pkg/core"
	"github.com/photonlab/go-photon-tracer/pkg/geometry"
	"github.com/photonlab/go-photon-tracer/pkg/lights"
	"github.com/photonlab/go-photon-tracer/pkg/material"
)

const (
	cornellScale            = 25.0
	cornellAmbientStrength  = 0.1
	cornellSpecularStrength = 0.75
)

// cornellCamera sits just inside the back wall looking into the box
func cornellCamera(aspectRatio float64) core.Camera {
	return core.NewLookAtCamera(
		core.NewVec3(0, 12.5, -12),
		core.NewVec3(0, 10, 0),
		core.NewVec3(0, 1, 0),
		70,
		aspectRatio,
	)
}

// wallPhong creates the Phong material shared by the box walls
func wallPhong(color core.Vec3) *material.Phong {
	p := material.NewPhong(color)
	p.AmbientStrength = cornellAmbientStrength
	p.SpecularStrength = cornellSpecularStrength
	return p
}

// checkerFloor creates the checkerboard Phong material used on the box floor
func checkerFloor() *material.Phong {
	p := material.NewTexturedPhong(material.NewCheckerboardTexture(100, 100, 10, White, core.NewVec3(0.1, 0.1, 0.1)))
	p.AmbientStrength = cornellAmbientStrength
	p.SpecularStrength = cornellSpecularStrength
	return p
}

// wall places a unit quad facing +Z at the given rotation and position
func wall(scale float64, rotation, translation mgl64.Vec3, m core.Material) *geometry.MeshBody {
	quad := geometry.NewQuad(m)
	quad.SetTransform(geometry.Compose(mgl64.Vec3{scale, scale, scale}, rotation, translation))
	return quad
}

// buildCornellBox adds the six walls and the ceiling spot light. front and
// back may be replaced, for example by mirrors.
func buildCornellBox(s *Scene, scale float64, front, back core.Material) {
	half := scale / 2

	s.Floor = wall(scale, mgl64.Vec3{-math.Pi / 2, 0, 0}, mgl64.Vec3{0, 0, 0}, checkerFloor())
	s.AddBody(s.Floor)
	s.AddBody(wall(scale, mgl64.Vec3{math.Pi / 2, 0, 0}, mgl64.Vec3{0, scale, 0}, wallPhong(Gray)))
	s.AddBody(wall(scale, mgl64.Vec3{math.Pi, 0, 0}, mgl64.Vec3{0, half, half}, front))
	s.AddBody(wall(scale, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, half, -half}, back))
	s.AddBody(wall(scale, mgl64.Vec3{0, math.Pi / 2, 0}, mgl64.Vec3{-half, half, 0}, wallPhong(LimeGreen)))
	s.AddBody(wall(scale, mgl64.Vec3{0, -math.Pi / 2, 0}, mgl64.Vec3{half, half, 0}, wallPhong(Red)))

	s.AddLight(lights.NewSpotLight(core.NewVec3(0, scale-0.1, 0), core.NewVec3(0, -1, 0), 45, LightYellow))
}

// NewCornellScene creates a Cornell box holding a mirror sphere, an orange
// pillar and a glass sphere. Animation spins the pillar around its axis.
func NewCornellScene(aspectRatio float64) *Scene {
	s := NewScene(cornellCamera(aspectRatio))
	buildCornellBox(s, cornellScale, wallPhong(Gray), wallPhong(MediumBlue))

	mirrorSphere := geometry.NewSphere(20, 20, material.NewMirror(White, 0.75))
	mirrorSphere.SetTransform(geometry.Compose(mgl64.Vec3{4, 4, 4}, mgl64.Vec3{}, mgl64.Vec3{5, 5, 5}))
	s.AddBody(mirrorSphere)

	pillarMaterial := material.NewPhong(Orange)
	pillarMaterial.NormalMode = core.NormalModeFace
	pillar := geometry.NewCube(1, 4, 1, pillarMaterial)
	pillar.SetTransform(geometry.Compose(mgl64.Vec3{4, 4, 4}, mgl64.Vec3{}, mgl64.Vec3{-9, 8, 9}))
	s.AddBody(pillar)

	glassSphere := geometry.NewSphere(20, 20, material.NewTransparent(White))
	glassSphere.SetTransform(geometry.Compose(mgl64.Vec3{4, 4, 4}, mgl64.Vec3{}, mgl64.Vec3{-4, 5, -8}))
	s.AddBody(glassSphere)

	s.Animation = func(frame int) {
		angle := float64(frame) * math.Pi / 30
		pillar.SetTransform(geometry.Compose(mgl64.Vec3{4, 4, 4}, mgl64.Vec3{0, angle, 0}, mgl64.Vec3{-9, 8, 9}))
	}

	return s
}

// NewCornellMirrorScene creates a Cornell box with mirrors for front and back
// walls facing each other around a yellow sphere. Animation bobs the sphere.
func NewCornellMirrorScene(aspectRatio float64) *Scene {
	s := NewScene(cornellCamera(aspectRatio))

	mirror := func() core.Material {
		m := material.NewMirror(White, 1)
		m.NormalMode = core.NormalModeFace
		return m
	}
	buildCornellBox(s, cornellScale, mirror(), mirror())

	sphere := geometry.NewSphere(30, 30, material.NewPhong(Yellow))
	sphere.SetTransform(geometry.Compose(mgl64.Vec3{4, 4, 4}, mgl64.Vec3{}, mgl64.Vec3{0, 5, 0}))
	s.AddBody(sphere)

	s.Animation = func(frame int) {
		height := 5 + math.Sin(float64(frame)*math.Pi/15)
		sphere.SetTransform(geometry.Compose(mgl64.Vec3{4, 4, 4}, mgl64.Vec3{}, mgl64.Vec3{0, height, 0}))
	}

	return s
}
