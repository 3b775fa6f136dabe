package core

// Gradient is a vertical sky gradient used for rays that escape the scene.
// Straight down evaluates to Horizon and straight up to Zenith.
type Gradient struct {
	Horizon Vec3
	Zenith  Vec3
}

// DefaultGradient returns a white-to-blue sky
func DefaultGradient() Gradient {
	return Gradient{
		Horizon: NewVec3(1.0, 1.0, 1.0),
		Zenith:  NewVec3(0.0, 0.3, 0.8),
	}
}

// Evaluate returns the sky color seen along direction
func (g Gradient) Evaluate(direction Vec3) Vec3 {
	unitDirection := direction.Normalize()

	// map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return g.Horizon.Multiply(1.0 - t).Add(g.Zenith.Multiply(t))
}
