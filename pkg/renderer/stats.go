package renderer

import (
	"image/color"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays
	SamplesPerPixel int           // Samples taken for every pixel
	MaxDepth        int           // Maximum ray bounce depth
	RaysTraced      int64         // Camera and scattered rays cast against the world
	RenderTime      time.Duration // Wall time of the pass
}

// RaysPerSample returns the average path length of a camera ray
func (s RenderStats) RaysPerSample() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.RaysTraced) / float64(s.TotalSamples)
}

// RaysPerSecond returns the tracing throughput of the pass
func (s RenderStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.RaysTraced) / s.RenderTime.Seconds()
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(sample core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(sample)
	ps.SampleCount++
}

// Color returns the finalized display color for this pixel
func (ps *PixelStats) Color() color.RGBA {
	return FinalizeColor(ps.ColorAccum, ps.SampleCount)
}
