package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

var (
	ErrInvalidAlbedo          = errors.New("material: albedo channels must be in [0, 1]")
	ErrInvalidRefractiveIndex = errors.New("material: refractive index must be positive")
)

func validateAlbedo(albedo core.Vec3) error {
	for _, c := range []float64{albedo.X, albedo.Y, albedo.Z} {
		if !(c >= 0 && c <= 1) {
			return fmt.Errorf("%w: %v", ErrInvalidAlbedo, albedo)
		}
	}
	return nil
}
