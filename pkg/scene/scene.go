package scene

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	World          *geometry.HittableList // Spheres in the scene
	Background     core.Gradient          // Sky seen by rays that escape
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed for the render's random sampler
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          HeightForAspect(400, 16.0/9.0),
		SamplesPerPixel: 100,
		MaxDepth:        20,
		Seed:            42,
	}
}

// HeightForAspect derives the image height from its width and aspect ratio
func HeightForAspect(width int, aspectRatio float64) int {
	return int(float64(width) / aspectRatio)
}

// Validate rejects configurations the render loop cannot handle. Pixel
// coordinates are divided by width-1 and height-1, so both must be at least 2.
func (c SamplingConfig) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: image size %dx%d, need at least 2x2", ErrInvalidSamplingConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidSamplingConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidSamplingConfig, c.MaxDepth)
	}
	return nil
}

// NewScene creates an empty scene with the given camera and sky
func NewScene(name string, camera *geometry.Camera, background core.Gradient, config SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Camera:         camera,
		World:          geometry.NewHittableList(),
		Background:     background,
		SamplingConfig: config,
	}
}

// AddSphere adds a sphere to the world
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat core.Material) error {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return err
	}
	s.World.Add(sphere)
	return nil
}

// sceneBuilder keeps the first construction error so presets can be written
// without checking every call
type sceneBuilder struct {
	scene *Scene
	err   error
}

func newSceneBuilder(name string, vfov, aspectRatio float64, background core.Gradient, config SamplingConfig) *sceneBuilder {
	camera, err := geometry.NewCamera(vfov, aspectRatio)
	if err != nil {
		return &sceneBuilder{err: err}
	}
	return &sceneBuilder{scene: NewScene(name, camera, background, config)}
}

func (b *sceneBuilder) lambertian(albedo core.Vec3) core.Material {
	if b.err != nil {
		return nil
	}
	m, err := material.NewLambertian(albedo)
	if err != nil {
		b.err = err
		return nil
	}
	return m
}

func (b *sceneBuilder) metal(albedo core.Vec3, fuzz float64) core.Material {
	if b.err != nil {
		return nil
	}
	m, err := material.NewMetal(albedo, fuzz)
	if err != nil {
		b.err = err
		return nil
	}
	return m
}

func (b *sceneBuilder) dielectric(refractiveIndex float64) core.Material {
	if b.err != nil {
		return nil
	}
	m, err := material.NewDielectric(refractiveIndex)
	if err != nil {
		b.err = err
		return nil
	}
	return m
}

func (b *sceneBuilder) sphere(center core.Vec3, radius float64, mat core.Material) {
	if b.err != nil {
		return
	}
	b.err = b.scene.AddSphere(center, radius, mat)
}

func (b *sceneBuilder) build() (*Scene, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building scene: %w", b.err)
	}
	return b.scene, nil
}
