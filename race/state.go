// Package race tracks lap progress: side-of-line classification against the
// map's lap rule, crossing validation, race state and lap timing.
package race

// State is the race phase, monotonic until an explicit reset
type State uint8

const (
	StateReady State = iota
	StateRacing
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRacing:
		return "racing"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// EventKind identifies a tracker transition
type EventKind uint8

const (
	EventLapCompleted EventKind = iota
	EventLapRejected
	EventRaceFinished
)

func (k EventKind) String() string {
	switch k {
	case EventLapCompleted:
		return "lap_completed"
	case EventLapRejected:
		return "lap_rejected"
	case EventRaceFinished:
		return "race_finished"
	}
	return "unknown"
}

// Event is emitted by Tracker.Update on the tick a transition happens
type Event struct {
	Kind     EventKind
	Lap      int     // lap count after the event
	LapTime  float64 // seconds, set on EventLapCompleted
	RaceTime float64 // seconds since start
}
