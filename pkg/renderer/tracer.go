package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

var (
	// ErrTraceNotBegun is returned by PerformTrace when no session is open
	ErrTraceNotBegun = errors.New("trace not begun")

	// ErrTraceInProgress is returned by BeginTrace when the previous session was not ended
	ErrTraceInProgress = errors.New("trace already in progress")

	// ErrInvalidScale is returned by BeginTrace for a resolution scale that yields an empty image
	ErrInvalidScale = errors.New("invalid resolution scale")
)

// TracerConfig contains the parallelism settings of a Tracer
type TracerConfig struct {
	NumWorkers int // Number of parallel workers (0 = auto-detect CPU count)
	TileSize   int // Size of each tile in pixels
}

// DefaultTracerConfig returns sensible default values
func DefaultTracerConfig() TracerConfig {
	return TracerConfig{
		NumWorkers: 0,
		TileSize:   32,
	}
}

// faceCounter is implemented by scenes that can report their triangle count
type faceCounter interface {
	FaceCount() int
}

// Tracer renders one radiance buffer per pass. A session is opened with
// BeginTrace, run with PerformTrace and closed with End. Buffers are kept
// across sessions and only reallocated when the resolution changes.
type Tracer struct {
	baseWidth  int
	baseHeight int
	config     TracerConfig
	logger     core.Logger

	scene  core.Scene
	width  int
	height int
	active bool

	rays     []core.Ray
	radiance []core.Vec3
}

// NewTracer creates a tracer for a base resolution of width x height
func NewTracer(width, height int, config TracerConfig, logger core.Logger) *Tracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTracerConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Tracer{
		baseWidth:  width,
		baseHeight: height,
		config:     config,
		logger:     logger,
	}
}

// BeginTrace opens a session for scene at the base resolution multiplied by
// scale and generates the camera ray of every pixel. The scene must not be
// mutated until End is called.
func (t *Tracer) BeginTrace(scene core.Scene, scale float64) error {
	if t.active {
		return ErrTraceInProgress
	}

	width := int(float64(t.baseWidth) * scale)
	height := int(float64(t.baseHeight) * scale)
	if scale <= 0 || width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %v gives %dx%d", ErrInvalidScale, scale, width, height)
	}

	if width != t.width || height != t.height || t.radiance == nil {
		t.width = width
		t.height = height
		t.rays = make([]core.Ray, width*height)
		t.radiance = make([]core.Vec3, width*height)
	}

	GenerateCameraRays(scene.GetCamera(), width, height, t.rays)

	t.scene = scene
	t.active = true

	if counter, ok := scene.(faceCounter); ok {
		t.logger.Printf("Begin trace %dx%d, %d faces, %d lights\n",
			width, height, counter.FaceCount(), len(scene.GetLights()))
	} else {
		t.logger.Printf("Begin trace %dx%d, %d lights\n", width, height, len(scene.GetLights()))
	}

	return nil
}

// PerformTrace traces every pixel of the open session in parallel and
// writes the results into the radiance buffer
func (t *Tracer) PerformTrace() (PassStats, error) {
	if !t.active {
		return PassStats{}, ErrTraceNotBegun
	}

	start := time.Now()
	tiles := NewTileGrid(t.width, t.height, t.config.TileSize)

	pool := NewWorkerPool(t.traceTile, len(tiles), t.config.NumWorkers)
	pool.Start()
	defer pool.Stop()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: i,
		})
	}

	var merged TileStats
	var firstErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return PassStats{}, fmt.Errorf("worker pool closed after %d of %d tiles", i, len(tiles))
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		merged.Add(result.Stats)
	}
	if firstErr != nil {
		return PassStats{}, fmt.Errorf("trace pass failed: %w", firstErr)
	}

	stats := newPassStats(t.width, t.height, len(tiles), pool.GetNumWorkers(), merged, time.Since(start))
	t.logger.Printf("Traced %d pixels in %v (%d tiles, %d workers, %.0f rays/s)\n",
		stats.Pixels, stats.Duration, stats.Tiles, stats.Workers, stats.RaysPerSecond())

	return stats, nil
}

// traceTile fills the radiance of one tile. Tiles are disjoint, so workers
// never write the same index.
func (t *Tracer) traceTile(tile *Tile) TileStats {
	var stats TileStats
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			i := y*t.width + x
			t.radiance[i] = core.Trace(t.scene, t.rays[i], 0)
			stats.AddPixel(t.radiance[i])
		}
	}
	return stats
}

// End closes the session. The radiance buffer stays readable until the next BeginTrace.
func (t *Tracer) End() {
	t.scene = nil
	t.active = false
}

// Trace returns the radiance along a single ray in the session's scene
func (t *Tracer) Trace(ray core.Ray, depth int) (core.Vec3, error) {
	if !t.active {
		return core.Vec3{}, ErrTraceNotBegun
	}
	return core.Trace(t.scene, ray, depth), nil
}

// Radiance returns the row-major linear radiance buffer of the last pass
func (t *Tracer) Radiance() []core.Vec3 {
	return t.radiance
}

// Resolution returns the size of the current buffers
func (t *Tracer) Resolution() (int, int) {
	return t.width, t.height
}

// Active reports whether a session is open
func (t *Tracer) Active() bool {
	return t.active
}
