package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// maxIntensity keeps 256*c below 256 so the byte conversion never wraps
const maxIntensity = 0.999

// FinalizeColor converts a sum of linear samples to an 8-bit display color:
// average, gamma correct with gamma 2, clamp and scale to [0, 255]
func FinalizeColor(sum core.Vec3, samples int) color.RGBA {
	if samples <= 0 {
		return color.RGBA{A: 255}
	}

	scale := 1.0 / float64(samples)
	return color.RGBA{
		R: toByte(sum.X * scale),
		G: toByte(sum.Y * scale),
		B: toByte(sum.Z * scale),
		A: 255,
	}
}

func toByte(linear float64) uint8 {
	c := math.Sqrt(linear)
	if math.IsNaN(c) || c < 0 {
		c = 0
	}
	if c > maxIntensity {
		c = maxIntensity
	}
	return uint8(256 * c)
}
