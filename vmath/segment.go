package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClosestOnSegment returns the point on segment ab nearest to p and the
// segment parameter in [0, 1]
func ClosestOnSegment(p, a, b mgl64.Vec2) (mgl64.Vec2, float64) {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a, 0
	}
	t := Clamp01(p.Sub(a).Dot(ab) / lenSq)
	return a.Add(ab.Mul(t)), t
}

// DistToPolyline returns the distance from p to the closest point of a closed
// polyline, +Inf for an empty one
func DistToPolyline(p mgl64.Vec2, pts []mgl64.Vec2) float64 {
	best := math.Inf(1)
	n := len(pts)
	for i := 0; i < n; i++ {
		c, _ := ClosestOnSegment(p, pts[i], pts[(i+1)%n])
		if d := c.Sub(p).Len(); d < best {
			best = d
		}
	}
	return best
}
