package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis
var Up = mgl64.Vec3{0, 1, 0}

// WrapAngle folds an angle into [-π, π]
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// AngleDiff returns the shortest signed rotation from 'from' to 'to'
func AngleDiff(from, to float64) float64 {
	return WrapAngle(to - from)
}

// YawQuat builds a unit quaternion rotating by angle around the vertical axis
func YawQuat(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, Up)
}

// QuatYaw extracts the yaw angle of a yaw-only quaternion
func QuatYaw(q mgl64.Quat) float64 {
	return Heading(Forward(q))
}

// Heading returns the yaw angle of a direction, 0 along +Z, π/2 along +X
func Heading(v mgl64.Vec3) float64 {
	return math.Atan2(v.X(), v.Z())
}
