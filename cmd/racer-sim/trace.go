package main

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/race"
)

// Sample is one recorded tick
type Sample struct {
	T       float64
	X, Z    float64
	Speed   float64
	Heading float64
	Steer   float64
	Lap     int
	State   race.State
}

// Run drives sim through the script at a fixed dt, recording after each tick
// Stops early once the race finishes
func Run(sim *engine.Simulation, segs []Segment, dt float64) []Sample {
	var out []Sample
	t := 0.0
	for _, seg := range segs {
		sim.SetInput(seg.Input)
		ticks := int(math.Round(seg.Duration / dt))
		for i := 0; i < ticks; i++ {
			sim.Step(dt)
			t += dt
			snap := sim.Snapshot()
			out = append(out, Sample{
				T:       t,
				X:       snap.Position.X(),
				Z:       snap.Position.Z(),
				Speed:   snap.Speed,
				Heading: snap.Heading,
				Steer:   snap.Steer,
				Lap:     snap.Lap,
				State:   snap.State,
			})
			if snap.State == race.StateFinished {
				return out
			}
		}
	}
	return out
}

// WriteCSV writes t,x,z,speed,heading,steer,lap,state rows with a header
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "x", "z", "speed", "heading", "steer", "lap", "state"}); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	for _, s := range samples {
		row := []string{f(s.T), f(s.X), f(s.Z), f(s.Speed), f(s.Heading), f(s.Steer), strconv.Itoa(s.Lap), s.State.String()}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
