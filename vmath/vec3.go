package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	localForward = mgl64.Vec3{0, 0, 1}
	localRight   = mgl64.Vec3{1, 0, 0}
)

// Flatten drops the vertical component and renormalizes
// Zero-length input returns the zero vector
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Forward returns the horizontal unit forward vector of an orientation
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return Flatten(q.Rotate(localForward))
}

// Right returns the horizontal unit right vector of an orientation
func Right(q mgl64.Quat) mgl64.Vec3 {
	return Flatten(q.Rotate(localRight))
}

// HorizontalSpeed returns the XZ magnitude of v
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return math.Sqrt(v.X()*v.X() + v.Z()*v.Z())
}

// DotXZ is the dot product restricted to the horizontal plane
func DotXZ(a, b mgl64.Vec3) float64 {
	return a.X()*b.X() + a.Z()*b.Z()
}

// ScaleXZ scales the horizontal components and keeps Y
func ScaleXZ(v mgl64.Vec3, s float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X() * s, v.Y(), v.Z() * s}
}
