package race

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
)

// Tracker is the lap state machine for one vehicle
// Not safe for concurrent use; each vehicle owns its own Tracker
type Tracker struct {
	rule      track.LapRule
	totalLaps int

	id       uuid.UUID
	state    State
	lap      int
	prevSide track.Side
	ctx      track.Context

	raceTime float64
	lapStart float64
	lapTimes []float64
}

// NewTracker returns a tracker in StateReady
func NewTracker(rule track.LapRule, totalLaps int) *Tracker {
	if totalLaps <= 0 {
		totalLaps = parameter.DefaultTotalLaps
	}
	t := &Tracker{rule: rule, totalLaps: totalLaps}
	t.Reset()
	return t
}

// Reset returns to StateReady with zero laps and no side history, all at once
func (t *Tracker) Reset() {
	t.id = uuid.New()
	t.state = StateReady
	t.lap = 0
	t.prevSide = track.SideNone
	t.ctx = track.Context{}
	t.raceTime = 0
	t.lapStart = 0
	t.lapTimes = nil
}

// Start moves ready to racing, other states are unchanged
func (t *Tracker) Start() {
	if t.state == StateReady {
		t.state = StateRacing
	}
}

// Restart is Reset followed by Start
func (t *Tracker) Restart() {
	t.Reset()
	t.Start()
}

// Update classifies pos and applies any a->b crossing
// Sides and context are tracked in every state, laps only count while racing
func (t *Tracker) Update(pos mgl64.Vec3, dt float64) []Event {
	if t.rule == nil {
		return nil
	}
	if t.state == StateRacing && dt > 0 {
		t.raceTime += dt
	}

	var events []Event
	side := t.rule.SideOf(pos)
	switch side {
	case track.SideA:
		if t.prevSide != track.SideA {
			t.ctx = track.Context{}
		}
		t.ctx.Observe(pos)
	case track.SideB:
		if t.prevSide == track.SideA && t.state == StateRacing {
			events = t.cross()
		}
	}
	t.prevSide = side
	return events
}

func (t *Tracker) cross() []Event {
	if !t.rule.ValidCrossing(t.ctx) {
		log.Printf("race %s: crossing rejected at lap %d, context %+v", t.id, t.lap, t.ctx)
		return []Event{{Kind: EventLapRejected, Lap: t.lap, RaceTime: t.raceTime}}
	}

	t.lap++
	lapTime := t.raceTime - t.lapStart
	t.lapStart = t.raceTime
	t.lapTimes = append(t.lapTimes, lapTime)
	log.Printf("race %s: lap %d/%d in %.3fs", t.id, t.lap, t.totalLaps, lapTime)

	events := []Event{{Kind: EventLapCompleted, Lap: t.lap, LapTime: lapTime, RaceTime: t.raceTime}}
	if t.lap >= t.totalLaps {
		t.state = StateFinished
		log.Printf("race %s: finished in %.3fs", t.id, t.raceTime)
		events = append(events, Event{Kind: EventRaceFinished, Lap: t.lap, RaceTime: t.raceTime})
	}
	return events
}

func (t *Tracker) ID() uuid.UUID          { return t.id }
func (t *Tracker) State() State           { return t.state }
func (t *Tracker) Lap() int               { return t.lap }
func (t *Tracker) TotalLaps() int         { return t.totalLaps }
func (t *Tracker) Side() track.Side       { return t.prevSide }
func (t *Tracker) Context() track.Context { return t.ctx }
func (t *Tracker) RaceTime() float64      { return t.raceTime }

// CurrentLapTime is the time since the last validated crossing
func (t *Tracker) CurrentLapTime() float64 { return t.raceTime - t.lapStart }

// LapTimes returns a copy of completed lap times in seconds
func (t *Tracker) LapTimes() []float64 {
	return append([]float64(nil), t.lapTimes...)
}

// Summary summarizes the completed laps so far
func (t *Tracker) Summary() Summary {
	s := Summarize(t.lapTimes)
	s.RaceID = t.id.String()
	s.Finished = t.state == StateFinished
	s.Total = t.raceTime
	return s
}
