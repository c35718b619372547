package gamemath

import "math"

// ApplyFriction scales speed by the friction multiplier and snaps it to zero
// once its magnitude falls below threshold.
func ApplyFriction(speedX, friction, threshold float64) float64 {
	speedX *= friction
	if math.Abs(speedX) < threshold {
		return 0
	}
	return speedX
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

// Attraction returns the inverse-square pull from one point toward another.
// Points closer than minDist exert nothing.
func Attraction(from, to Vec, strength, minDist float64) Vec {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist <= minDist {
		return Vec{}
	}
	force := strength / (dist * dist)
	return Vec{X: dx / dist * force, Y: dy / dist * force}
}
