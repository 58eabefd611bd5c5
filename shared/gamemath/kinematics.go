package gamemath

// StoppingAccel solves v² = u² + 2·a·s for the acceleration that brings a
// body moving at speed u to rest over exactly distance. The result is
// negative for any positive distance.
func StoppingAccel(u, distance float64) float64 {
	return -(u * u) / (2 * distance)
}

// UniformDistance returns the distance covered at constant speed u over
// elapsed time t.
func UniformDistance(u, t float64) float64 {
	return u * t
}

// AccelDisplacement returns the ½·a·t² displacement term of constant
// acceleration a over elapsed time t.
func AccelDisplacement(a, t float64) float64 {
	return 0.5 * a * t * t
}

// BlendFactor maps s onto the [min, max] band as a 0..1 factor, clamped at
// both ends.
func BlendFactor(s, min, max float64) float64 {
	if max <= min {
		return 1
	}
	f := (s - min) / (max - min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Lerp interpolates linearly between a and b by factor f.
func Lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
