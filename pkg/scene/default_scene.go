package scene

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// NewDefaultScene creates the four sphere scene: a ground sphere with a diffuse
// blue sphere in the middle, glass on the left and polished copper on the right.
// Everything is scaled by cos(pi/4) so the row fits the 90 degree view.
func NewDefaultScene() (*Scene, error) {
	b := newSceneBuilder("default", 90.0, 16.0/9.0, core.DefaultGradient(), DefaultSamplingConfig())

	ground := b.lambertian(core.NewVec3(0.2, 0.8, 0.5))
	center := b.lambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := b.dielectric(1.5)
	right := b.metal(core.NewVec3(0.8, 0.4, 0.1), 0.0)

	r := math.Cos(math.Pi / 4)
	b.sphere(core.NewVec3(0, -100.5*r, -1), 100*r, ground)
	b.sphere(core.NewVec3(0, 0, -1), 0.5*r, center)
	b.sphere(core.NewVec3(-r, 0, -1), 0.5*r, left)
	b.sphere(core.NewVec3(r, 0, -1), 0.5*r, right)

	return b.build()
}

// NewSimpleScene creates a single diffuse sphere resting on a large ground sphere
func NewSimpleScene() (*Scene, error) {
	sky := core.Gradient{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
	b := newSceneBuilder("simple", 90.0, 16.0/9.0, sky, DefaultSamplingConfig())

	ground := b.lambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := b.lambertian(core.NewVec3(0.7, 0.3, 0.3))

	b.sphere(core.NewVec3(0, 0, -1), 0.5, center)
	b.sphere(core.NewVec3(0, -100.5, -1), 100, ground)

	return b.build()
}

// NewMaterialsScene shows every material side by side: a glass shell around an
// air bubble, a diffuse sphere and a brushed metal sphere
func NewMaterialsScene() (*Scene, error) {
	sky := core.Gradient{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
	config := DefaultSamplingConfig()
	config.MaxDepth = 50
	b := newSceneBuilder("materials", 90.0, 16.0/9.0, sky, config)

	ground := b.lambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := b.lambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := b.dielectric(1.5)
	// Inside the shell the ray leaves glass for air, the ratio flips accordingly
	bubble := b.dielectric(1.0 / 1.5)
	brushed := b.metal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	b.sphere(core.NewVec3(0, -100.5, -1), 100, ground)
	b.sphere(core.NewVec3(0, 0, -1), 0.5, center)
	b.sphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	b.sphere(core.NewVec3(-1, 0, -1), 0.4, bubble)
	b.sphere(core.NewVec3(1, 0, -1), 0.5, brushed)

	return b.build()
}
