package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ShadowAcneEpsilon is the smallest accepted hit distance. It keeps a bounced ray
// from re-hitting the surface it just left because of rounding.
const ShadowAcneEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along a camera ray
	RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3
}
