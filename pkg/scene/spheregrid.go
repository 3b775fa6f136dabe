package scene

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	// Out of gamut colors are clamped so they stay valid albedos
	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

const (
	gridColumns = 5
	gridRows    = 5
)

// NewSphereGridScene creates a grid of rainbow colored metal spheres on a gray
// ground. Hue changes across the grid and each row further back is rougher.
func NewSphereGridScene() (*Scene, error) {
	config := DefaultSamplingConfig()
	config.MaxDepth = 40
	b := newSceneBuilder("sphere-grid", 90.0, 16.0/9.0, core.DefaultGradient(), config)

	ground := b.lambertian(core.NewVec3(0.5, 0.5, 0.5))
	b.sphere(core.NewVec3(0, -1000.5, -1), 1000, ground)

	const (
		spacing = 1.0
		radius  = 0.3
	)
	for row := 0; row < gridRows; row++ {
		fuzz := float64(row) / float64(gridRows-1) * 0.5
		z := -1.5 - float64(row)*spacing

		for col := 0; col < gridColumns; col++ {
			index := row*gridColumns + col
			hue := 360.0 * float64(index) / float64(gridRows*gridColumns)
			albedo := oklchToRGB(0.7, 0.15, hue)

			x := (float64(col) - float64(gridColumns-1)/2) * spacing
			b.sphere(core.NewVec3(x, -0.5+radius, z), radius, b.metal(albedo, fuzz))
		}
	}

	return b.build()
}
