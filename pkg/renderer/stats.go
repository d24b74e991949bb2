package renderer

import (
	"time"

	"github.com/photonlab/go-photon-tracer/pkg/core"
)

// TileStats summarizes the pixels of one traced tile
type TileStats struct {
	Pixels       int     // Pixels traced
	LitPixels    int     // Pixels with non-zero radiance
	LuminanceSum float64 // Sum of pixel luminance
}

// Add merges other into s
func (s *TileStats) Add(other TileStats) {
	s.Pixels += other.Pixels
	s.LitPixels += other.LitPixels
	s.LuminanceSum += other.LuminanceSum
}

// AddPixel records one traced pixel
func (s *TileStats) AddPixel(radiance core.Vec3) {
	s.Pixels++
	if !radiance.IsZero() {
		s.LitPixels++
	}
	s.LuminanceSum += radiance.Luminance()
}

// PassStats contains statistics about one trace pass
type PassStats struct {
	Width, Height    int
	Tiles            int
	Workers          int
	Pixels           int
	LitPixels        int
	AverageLuminance float64 // Mean linear luminance over all pixels
	Duration         time.Duration
}

// newPassStats builds pass statistics from the merged tile statistics
func newPassStats(width, height, tiles, workers int, merged TileStats, duration time.Duration) PassStats {
	stats := PassStats{
		Width:     width,
		Height:    height,
		Tiles:     tiles,
		Workers:   workers,
		Pixels:    merged.Pixels,
		LitPixels: merged.LitPixels,
		Duration:  duration,
	}
	if merged.Pixels > 0 {
		stats.AverageLuminance = merged.LuminanceSum / float64(merged.Pixels)
	}
	return stats
}

// RaysPerSecond returns the primary ray throughput of the pass
func (s PassStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Duration.Seconds()
}
