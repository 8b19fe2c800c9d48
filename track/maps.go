package track

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/parameter"
)

// GP1 is the default circuit: grid on the main straight heading -X, the line
// at x = 0 counts when the far (x >= 0) sector has been driven
func GP1() *Map {
	return &Map{
		ID:   "gp1",
		Name: "Grand Prix",
		Points: []mgl64.Vec2{
			{0, 0}, {-60, 0}, {-100, -10}, {-120, -40}, {-110, -80}, {-70, -100},
			{-20, -90}, {20, -110}, {70, -120}, {120, -100}, {150, -60},
			{140, -20}, {100, 0}, {50, 0},
		},
		RoadWidth: 26,
		Lap: CheckpointRule{
			Line:        Line{Axis: AxisX, Position: 0, ABelow: false},
			Checkpoints: []mgl64.Vec2{{100, -90}, {130, -30}},
		},
		Spawn:        mgl64.Vec3{30, parameter.SpawnHeight, 0},
		SpawnHeading: -math.Pi / 2,
		TotalLaps:    3,
	}
}

// Oval is a 120x80 ellipse, line at x = 0, valid once x dropped below -20
// The grid sits on the lower straight heading +X
func Oval() *Map {
	return &Map{
		ID:            "oval",
		Name:          "Oval",
		Points:        ellipse(120, 80, 48),
		RoadWidth:     28,
		WallHeight:    3,
		WallThickness: 1.2,
		Lap: LineRule{
			Line:  Line{Axis: AxisX, Position: 0, ABelow: true},
			Bound: Bound{Extremum: ExtremumMinX, Threshold: -20},
		},
		Spawn:        mgl64.Vec3{5, parameter.SpawnHeight, -80},
		SpawnHeading: math.Pi / 2,
		TotalLaps:    5,
	}
}

// Sprint is a short straight and a tight hairpin, valid once x dropped below -8
func Sprint() *Map {
	return &Map{
		ID:   "sprint",
		Name: "Sprint",
		Points: []mgl64.Vec2{
			{0, 0}, {40, 0}, {80, 0}, {100, 10}, {110, 40}, {105, 70}, {80, 95},
			{50, 100}, {20, 90}, {0, 70}, {-15, 45}, {-10, 15}, {-5, 5},
		},
		RoadWidth:     24,
		WallHeight:    2.5,
		WallThickness: 1,
		Lap: LineRule{
			Line:  Line{Axis: AxisX, Position: 0, ABelow: true},
			Bound: Bound{Extremum: ExtremumMinX, Threshold: -8},
		},
		Spawn:        mgl64.Vec3{4, parameter.SpawnHeight, 0},
		SpawnHeading: -math.Pi / 2,
		TotalLaps:    5,
	}
}

func ellipse(rx, rz float64, segments int) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, segments)
	for i := range pts {
		t := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = mgl64.Vec2{math.Cos(t) * rx, math.Sin(t) * rz}
	}
	return pts
}
