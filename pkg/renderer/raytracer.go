package renderer

import (
	"image"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	config     scene.SamplingConfig
	integrator *integrator.PathTracingIntegrator
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the scene's sampling configuration
func NewRaytracer(sc *scene.Scene, logger core.Logger) (*Raytracer, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt := &Raytracer{
		scene:  sc,
		logger: logger,
	}
	if err := rt.SetSamplingConfig(sc.SamplingConfig); err != nil {
		return nil, err
	}
	return rt, nil
}

// SetSamplingConfig updates the sampling configuration. The sampler is reseeded
// so the next pass is reproducible from config.Seed.
func (rt *Raytracer) SetSamplingConfig(config scene.SamplingConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	rt.config = config
	rt.integrator = integrator.NewPathTracingIntegrator(config.MaxDepth, rt.scene.Background)
	rt.sampler = core.NewSeededSampler(config.Seed)
	return nil
}

// SamplingConfig returns the active sampling configuration
func (rt *Raytracer) SamplingConfig() scene.SamplingConfig {
	return rt.config
}

// SamplePixel accumulates SamplesPerPixel jittered samples for pixel column i
// and camera row j, where row 0 is the bottom of the image
func (rt *Raytracer) SamplePixel(i, j int) PixelStats {
	var stats PixelStats
	camera := rt.scene.Camera

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + rt.sampler.Get1D()) / float64(rt.config.Width-1)
		v := (float64(j) + rt.sampler.Get1D()) / float64(rt.config.Height-1)

		ray := camera.GetRay(u, v)
		stats.AddSample(rt.integrator.RayColor(ray, rt.scene.World, rt.sampler))
	}

	return stats
}

// RenderPass renders the whole image, top scanline first
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	startTime := time.Now()
	startBounces := rt.integrator.Bounces

	rt.logger.Infof("Rendering %q at %dx%d, %d samples per pixel, max depth %d",
		rt.scene.Name, width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	for j := height - 1; j >= 0; j-- {
		rt.logger.Debugf("Scanlines remaining: %d", j+1)

		for i := 0; i < width; i++ {
			pixel := rt.SamplePixel(i, j)
			img.SetRGBA(i, height-1-j, pixel.Color())
		}
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		RaysTraced:      rt.integrator.Bounces - startBounces,
		RenderTime:      time.Since(startTime),
	}

	rt.logger.Infof("Render completed in %v", stats.RenderTime)

	return img, stats
}
