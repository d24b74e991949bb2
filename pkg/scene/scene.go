package scene

import (
	"errors"
	"fmt"

	"github.com/photonlab/go-photon-tracer/pkg/core"
	"github.com/photonlab/go-photon-tracer/pkg/geometry"
	"github.com/photonlab/go-photon-tracer/pkg/material"
)

// ErrNoFloor is returned when a floor texture is applied to a scene without a floor
var ErrNoFloor = errors.New("scene has no floor")

// Animation moves bodies, lights or the camera for a given frame. It runs
// between trace passes, never while one is in progress.
type Animation func(frame int)

// Scene contains all the elements needed for tracing. It is read-only for
// the duration of a trace pass.
type Scene struct {
	Camera      core.Camera
	Bodies      []*geometry.MeshBody // Objects in the scene
	Lights      []core.Light         // Lights in the scene
	TraceConfig core.TraceConfig
	Animation   Animation          // Optional
	Floor       *geometry.MeshBody // Optional, also listed in Bodies
}

// NewScene creates an empty scene viewed through camera
func NewScene(camera core.Camera) *Scene {
	return &Scene{
		Camera:      camera,
		Bodies:      make([]*geometry.MeshBody, 0),
		Lights:      make([]core.Light, 0),
		TraceConfig: core.DefaultTraceConfig(),
	}
}

// AddBody adds a mesh body to the scene
func (s *Scene) AddBody(body *geometry.MeshBody) {
	s.Bodies = append(s.Bodies, body)
}

// AddLight adds a light source to the scene
func (s *Scene) AddLight(light core.Light) {
	s.Lights = append(s.Lights, light)
}

// Intersect returns the closest hit over all bodies
func (s *Scene) Intersect(ray core.Ray) (core.HitInfo, bool) {
	closest := core.NoHit()
	hitFound := false

	for _, body := range s.Bodies {
		if hit, isHit := body.Intersect(ray); isHit && hit.LessOrEqual(closest) {
			closest = hit
			hitFound = true
		}
	}

	return closest, hitFound
}

// FaceCount returns the total number of triangles in the scene
func (s *Scene) FaceCount() int {
	count := 0
	for _, body := range s.Bodies {
		count += body.FaceCount()
	}
	return count
}

// texturable is implemented by materials whose albedo can come from a texture
type texturable interface {
	SetTexture(texture material.ColorSource)
}

// SetFloorTexture replaces the albedo of the floor material with texture
func (s *Scene) SetFloorTexture(texture material.ColorSource) error {
	if s.Floor == nil {
		return ErrNoFloor
	}
	m, ok := s.Floor.Material.(texturable)
	if !ok {
		return fmt.Errorf("floor material %T cannot be textured", s.Floor.Material)
	}
	m.SetTexture(texture)
	return nil
}

// Advance applies the scene's animation for frame, if it has one
func (s *Scene) Advance(frame int) {
	if s.Animation != nil {
		s.Animation(frame)
	}
}

// GetLights implements core.Scene
func (s *Scene) GetLights() []core.Light {
	return s.Lights
}

// GetCamera implements core.Scene
func (s *Scene) GetCamera() core.Camera {
	return s.Camera
}

// GetTraceConfig implements core.Scene
func (s *Scene) GetTraceConfig() core.TraceConfig {
	return s.TraceConfig
}
