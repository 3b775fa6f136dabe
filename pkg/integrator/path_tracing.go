package integrator

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// PathTracingIntegrator follows a single scattered path per camera ray until it
// escapes to the sky, is absorbed, or runs out of bounces
type PathTracingIntegrator struct {
	maxDepth   int
	background core.Gradient

	// Bounces counts every ray cast against the world
	Bounces int64
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background core.Gradient) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		maxDepth:   maxDepth,
		background: background,
	}
}

// RayColor computes the color for a single ray. The running attenuation is carried
// across bounces in a loop, so stack usage does not grow with depth.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.maxDepth; depth > 0; depth-- {
		pt.Bounces++

		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.background.Evaluate(ray.Direction))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit exhausted, no more light is gathered
	return core.Vec3{}
}
