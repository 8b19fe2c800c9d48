// Package vmath holds the float math shared by the vehicle model, the
// physics stand-in and the renderer. Vectors and quaternions come from mgl64;
// this package only adds the game-specific conventions on top (Y up, yaw
// measured from +Z toward +X).
package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves current toward target by factor, factor is capped at 1 so a
// long frame never overshoots
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*math.Min(factor, 1)
}

// SnapZero returns 0 when |v| is below threshold
func SnapZero(v, threshold float64) float64 {
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}
