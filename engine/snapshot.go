package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/race"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Snapshot is an immutable copy of the observable world state
type Snapshot struct {
	Tick  uint64
	MapID string

	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Heading  float64
	Speed    float64 // horizontal
	SpeedKMH int
	Steer    float64 // smoothed steer input
	Drifting bool
	Contacts int

	Lap       int
	TotalLaps int
	State     race.State
	Side      track.Side

	RaceTime   float64
	CurrentLap float64
	LapTimes   []float64
	Events     []race.Event
}

// Snapshot copies the current state; slices are not shared with the simulation
func (s *Simulation) Snapshot() Snapshot {
	vel := s.body.LinearVelocity()
	speed := vmath.HorizontalSpeed(vel)
	tel := s.controller.Telemetry()

	snap := Snapshot{
		Tick:       s.tick,
		MapID:      s.m.ID,
		Position:   s.body.Position(),
		Velocity:   vel,
		Heading:    s.controller.State().SteerAngle,
		Speed:      speed,
		SpeedKMH:   int(math.Round(speed * parameter.SpeedToKMH)),
		Steer:      s.controller.Steer(),
		Drifting:   tel.Drifting,
		Contacts:   s.world.Contacts(),
		Lap:        s.tracker.Lap(),
		TotalLaps:  s.tracker.TotalLaps(),
		State:      s.tracker.State(),
		Side:       s.tracker.Side(),
		RaceTime:   s.tracker.RaceTime(),
		CurrentLap: s.tracker.CurrentLapTime(),
		LapTimes:   s.tracker.LapTimes(),
	}
	if len(s.events) > 0 {
		snap.Events = append([]race.Event(nil), s.events...)
	}
	return snap
}

// BestLap returns the fastest completed lap, 0 when none
func (sn Snapshot) BestLap() float64 {
	best := 0.0
	for i, t := range sn.LapTimes {
		if i == 0 || t < best {
			best = t
		}
	}
	return best
}

// LastLap returns the most recent completed lap, 0 when none
func (sn Snapshot) LastLap() float64 {
	if len(sn.LapTimes) == 0 {
		return 0
	}
	return sn.LapTimes[len(sn.LapTimes)-1]
}
