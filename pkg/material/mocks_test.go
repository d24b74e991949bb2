package material

import (
	"math"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// constantMaterial shades every hit with the same color
type constantMaterial struct {
	color core.Vec3
}

func (m constantMaterial) Shade(scene core.Scene, depth int, ray core.Ray, hit core.HitInfo) core.Vec3 {
	return m.color
}

func (m constantMaterial) DiffuseColor() core.Vec3 { return m.color }

// skyMaterial returns up for rays traveling upward and down otherwise
type skyMaterial struct {
	up, down core.Vec3
}

func (m skyMaterial) Shade(scene core.Scene, depth int, ray core.Ray, hit core.HitInfo) core.Vec3 {
	if ray.Direction.Y > 0 {
		return m.up
	}
	return m.down
}

func (m skyMaterial) DiffuseColor() core.Vec3 { return m.up }

// fixedLight reports the same samples for every query and records where it was asked from
type fixedLight struct {
	infos   []core.LightInfo
	queries []core.Vec3
}

func (l *fixedLight) Position() core.Vec3 { return core.Vec3{} }
func (l *fixedLight) EmissionPoints() []core.Vec3 { return []core.Vec3{{}} }

func (l *fixedLight) LightInfos(scene core.Scene, hitPosition core.Vec3, epsilon float64) []core.LightInfo {
	l.queries = append(l.queries, hitPosition)
	return l.infos
}

// mockScene answers every ray with one hit at distance 1 shaded by material,
// or with a miss when material is nil
type mockScene struct {
	material core.Material
	lights   []core.Light
	config   core.TraceConfig
	rays     []core.Ray
}

func newMockScene(material core.Material, lights ...core.Light) *mockScene {
	return &mockScene{material: material, lights: lights, config: core.DefaultTraceConfig()}
}

func (s *mockScene) Intersect(ray core.Ray) (core.HitInfo, bool) {
	s.rays = append(s.rays, ray)
	if s.material == nil {
		return core.NoHit(), false
	}
	return core.HitInfo{Distance: 1, Material: s.material}, true
}

func (s *mockScene) GetLights() []core.Light { return s.lights }
func (s *mockScene) GetCamera() core.Camera { return core.Camera{} }
func (s *mockScene) GetTraceConfig() core.TraceConfig { return s.config }

// floorHit is a hit on a floor facing +Y at the origin for a ray coming from (0, 1, 0)
func floorHit(material core.Material) (core.Ray, core.HitInfo) {
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := core.HitInfo{
		Distance:           1,
		InterpolatedNormal: core.NewVec3(0, 1, 0),
		FaceNormal:         core.NewVec3(0, 1, 0),
		Material:           material,
	}
	return ray, hit
}

func vecAlmostEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
