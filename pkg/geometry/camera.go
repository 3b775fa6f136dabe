package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// focalLength is the distance from the eye to the viewport
const focalLength = 1.0

// Camera generates rays for rendering. It sits at the origin looking down -Z.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3

	vfov        float64
	aspectRatio float64
}

// NewCamera creates a camera from a vertical field of view in degrees and an aspect ratio
func NewCamera(vfovDegrees, aspectRatio float64) (*Camera, error) {
	if !(vfovDegrees > 0 && vfovDegrees < 180) {
		return nil, fmt.Errorf("%w: vertical fov %v", ErrInvalidCamera, vfovDegrees)
	}
	if !(aspectRatio > 0) || math.IsInf(aspectRatio, 1) {
		return nil, fmt.Errorf("%w: aspect ratio %v", ErrInvalidCamera, aspectRatio)
	}

	theta := vfovDegrees * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		vfov:            vfovDegrees,
		aspectRatio:     aspectRatio,
	}, nil
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// VFov returns the vertical field of view in degrees
func (c *Camera) VFov() float64 {
	return c.vfov
}

// AspectRatio returns the viewport width divided by its height
func (c *Camera) AspectRatio() float64 {
	return c.aspectRatio
}
