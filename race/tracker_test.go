package race

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/vi-racer/track"
)

const dt = 1.0 / 60.0

func ovalRule() track.LapRule { return track.Oval().Lap }

func at(x float64) mgl64.Vec3 { return mgl64.Vec3{x, 0.55, 0} }

// drive feeds x positions and collects all events
func drive(tr *Tracker, xs ...float64) []Event {
	var all []Event
	for _, x := range xs {
		all = append(all, tr.Update(at(x), dt)...)
	}
	return all
}

func kinds(events []Event) []EventKind {
	var out []EventKind
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestShortCrossingRejected(t *testing.T) {
	tr := NewTracker(ovalRule(), 5)
	tr.Start()

	events := drive(tr, 5, -5, 5)
	if tr.Lap() != 0 {
		t.Errorf("Expected 0 laps, got %d", tr.Lap())
	}
	if diff := cmp.Diff([]EventKind{EventLapRejected}, kinds(events)); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestLongCrossingCountsOnce(t *testing.T) {
	tr := NewTracker(ovalRule(), 5)
	tr.Start()

	drive(tr, 5, -25, 5)
	if tr.Lap() != 1 {
		t.Fatalf("Expected 1 lap, got %d", tr.Lap())
	}
	// Staying on side b never counts again
	drive(tr, 6, 7, 50, 100)
	if tr.Lap() != 1 {
		t.Errorf("Expected lap count to stay 1, got %d", tr.Lap())
	}
}

func TestContextFreshOnReentry(t *testing.T) {
	tr := NewTracker(ovalRule(), 5)
	tr.Start()

	drive(tr, 5, -25, 5)
	// Re-entering side a starts an empty context, the old -25 is gone
	drive(tr, -5, 5)
	if tr.Lap() != 1 {
		t.Errorf("Expected 1 lap, got %d", tr.Lap())
	}
	if got := tr.Context().MinX; got != -5 {
		t.Errorf("Expected context min x -5, got %g", got)
	}
}

func TestFinishOnSameTick(t *testing.T) {
	tr := NewTracker(ovalRule(), 2)
	tr.Start()

	drive(tr, 5, -25, 5, -30)
	events := tr.Update(at(5), dt)

	if diff := cmp.Diff([]EventKind{EventLapCompleted, EventRaceFinished}, kinds(events)); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if tr.State() != StateFinished || tr.Lap() != 2 {
		t.Fatalf("Expected finished at lap 2, got %v at %d", tr.State(), tr.Lap())
	}

	// No increments after finishing
	if ev := drive(tr, -40, 5, -40, 5); len(ev) != 0 {
		t.Errorf("Expected no events after finish, got %v", kinds(ev))
	}
	if tr.Lap() != 2 {
		t.Errorf("Expected lap count 2 after finish, got %d", tr.Lap())
	}
}

func TestNoLapsWhileReady(t *testing.T) {
	tr := NewTracker(ovalRule(), 5)
	if ev := drive(tr, 5, -25, 5); len(ev) != 0 {
		t.Errorf("Expected no events while ready, got %v", kinds(ev))
	}
	if tr.Lap() != 0 || tr.State() != StateReady {
		t.Errorf("Expected ready with 0 laps, got %v with %d", tr.State(), tr.Lap())
	}
	if tr.RaceTime() != 0 {
		t.Errorf("Expected race clock stopped while ready, got %g", tr.RaceTime())
	}
	// Side is still tracked
	if tr.Side() != track.SideB {
		t.Errorf("Expected side b, got %v", tr.Side())
	}
}

func TestSpawnPastLineNoSpuriousLap(t *testing.T) {
	// gp1 side a is x >= 0, spawn past the line on side b
	tr := NewTracker(track.GP1().Lap, 3)
	tr.Start()
	for i := 0; i < 120; i++ {
		if ev := tr.Update(mgl64.Vec3{-30 - float64(i), 0.55, 0}, dt); len(ev) != 0 {
			t.Fatalf("tick %d: unexpected events %v", i, kinds(ev))
		}
	}
	if tr.Lap() != 0 {
		t.Errorf("Expected 0 laps, got %d", tr.Lap())
	}
}

func TestFirstObservationHasNoPreviousSide(t *testing.T) {
	tr := NewTracker(ovalRule(), 5)
	tr.Start()
	if tr.Side() != track.SideNone {
		t.Fatalf("Expected no side before first update, got %v", tr.Side())
	}
	// First tick on side b is not a crossing
	if ev := tr.Update(at(5), dt); len(ev) != 0 {
		t.Errorf("Expected no events, got %v", kinds(ev))
	}
}

func TestRestartIsAtomic(t *testing.T) {
	tr := NewTracker(ovalRule(), 5)
	tr.Start()
	drive(tr, 5, -25, 5, -40)
	oldID := tr.ID()

	tr.Restart()

	if tr.Lap() != 0 || tr.State() != StateRacing || tr.RaceTime() != 0 {
		t.Errorf("Expected fresh racing state, got %v lap %d time %g", tr.State(), tr.Lap(), tr.RaceTime())
	}
	if !tr.Context().Empty() || tr.Side() != track.SideNone {
		t.Errorf("Expected context and side discarded, got %+v side %v", tr.Context(), tr.Side())
	}
	if tr.ID() == oldID {
		t.Error("Expected new race id")
	}
	// The pre-restart -40 excursion must not validate the next crossing
	if ev := tr.Update(at(5), dt); len(ev) != 0 {
		t.Errorf("Expected no events after restart, got %v", kinds(ev))
	}
	if len(tr.LapTimes()) != 0 {
		t.Errorf("Expected no lap times, got %v", tr.LapTimes())
	}
}

func TestLapTiming(t *testing.T) {
	tr := NewTracker(ovalRule(), 5)
	tr.Start()

	tr.Update(at(5), 1)
	tr.Update(at(-25), 1)
	events := tr.Update(at(5), 1)
	if len(events) != 1 || events[0].LapTime != 3 {
		t.Fatalf("Expected one lap of 3s, got %+v", events)
	}
	tr.Update(at(-25), 0.5)
	tr.Update(at(5), 0.5)

	if diff := cmp.Diff([]float64{3, 1}, tr.LapTimes()); diff != "" {
		t.Errorf("lap times mismatch (-want +got):\n%s", diff)
	}
	if tr.CurrentLapTime() != 0 {
		t.Errorf("Expected current lap time 0 right after crossing, got %g", tr.CurrentLapTime())
	}

	// Returned slice is a copy
	times := tr.LapTimes()
	times[0] = 99
	if tr.LapTimes()[0] != 3 {
		t.Error("LapTimes exposed internal slice")
	}
}

func TestNilRuleIsNoop(t *testing.T) {
	tr := NewTracker(nil, 0)
	tr.Start()
	if ev := tr.Update(at(5), dt); ev != nil {
		t.Errorf("Expected nil events, got %v", ev)
	}
	if tr.TotalLaps() != 3 {
		t.Errorf("Expected default 3 laps, got %d", tr.TotalLaps())
	}
}
