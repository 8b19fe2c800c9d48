package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAngleDiffShortestPath(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"same", 1, 1, 0},
		{"small positive", 0, 0.5, 0.5},
		{"small negative", 0.5, 0, -0.5},
		{"across pi", math.Pi - 0.1, -math.Pi + 0.1, 0.2},
		{"across -pi", -math.Pi + 0.1, math.Pi - 0.1, -0.2},
		{"multiple turns", 0, 4*math.Pi + 0.3, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleDiff(tt.from, tt.to)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
			if got > math.Pi || got < -math.Pi {
				t.Errorf("Result %f outside [-π, π]", got)
			}
		})
	}
}

func TestYawQuatForwardRight(t *testing.T) {
	q := YawQuat(-math.Pi / 2)
	fwd := Forward(q)
	if !fwd.ApproxEqualThreshold(mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("Expected forward (-1,0,0), got %v", fwd)
	}
	right := Right(q)
	if !right.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("Expected right (0,0,1), got %v", right)
	}
	if math.Abs(q.Len()-1) > 1e-12 {
		t.Errorf("Expected unit quaternion, got length %f", q.Len())
	}
	if q.V.X() != 0 || q.V.Z() != 0 {
		t.Errorf("Expected yaw-only quaternion, got %v", q)
	}
}

func TestQuatYawRoundTrip(t *testing.T) {
	for _, a := range []float64{0, 0.3, -1.2, math.Pi / 2, -math.Pi / 2, 3} {
		if got := QuatYaw(YawQuat(a)); math.Abs(AngleDiff(a, got)) > 1e-9 {
			t.Errorf("yaw %f: got %f", a, got)
		}
	}
}

func TestFlattenZero(t *testing.T) {
	if v := Flatten(mgl64.Vec3{0, 5, 0}); v != (mgl64.Vec3{}) {
		t.Errorf("Expected zero vector, got %v", v)
	}
}

func TestApproachCapsFactor(t *testing.T) {
	if got := Approach(0, 1, 5); got != 1 {
		t.Errorf("Expected overshoot guard to land on target, got %f", got)
	}
	if got := Approach(0, 1, 0.25); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
}

func TestDistToPolyline(t *testing.T) {
	square := []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if d := DistToPolyline(mgl64.Vec2{5, 5}, square); math.Abs(d-5) > 1e-12 {
		t.Errorf("Expected 5, got %f", d)
	}
	// closing edge (0,10)-(0,0)
	if d := DistToPolyline(mgl64.Vec2{-2, 5}, square); math.Abs(d-2) > 1e-12 {
		t.Errorf("Expected 2, got %f", d)
	}
	if d := DistToPolyline(mgl64.Vec2{}, nil); !math.IsInf(d, 1) {
		t.Errorf("Expected +Inf for empty polyline, got %f", d)
	}
}
