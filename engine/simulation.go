// Package engine runs the race tick: it owns the body, controller, lap tracker
// and physics world of one race, and hands out per-frame snapshots.
package engine

import (
	"log"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/race"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vehicle"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Simulation owns the world state of one race and is its only writer
// Readers take a Snapshot once per frame; not safe for concurrent use
type Simulation struct {
	m        *track.Map
	geometry *track.Geometry
	laps     int // override, 0 uses the map's count

	world      *physics.World
	body       *physics.RigidBody
	controller *vehicle.Controller
	tracker    *race.Tracker

	input  core.Input
	tick   uint64
	events []race.Event
}

// NewSimulation builds a race on m; laps > 0 overrides the map's lap count
// The race starts in racing state with the car on the grid
func NewSimulation(m *track.Map, laps int) *Simulation {
	s := &Simulation{laps: laps}
	s.load(m)
	return s
}

func (s *Simulation) load(m *track.Map) {
	s.m = m
	s.geometry = track.Build(m)

	s.body = physics.NewRigidBody(m.Spawn, vmath.YawQuat(m.SpawnHeading))
	s.world = physics.NewWorld()
	s.world.AddBody(s.body)
	s.world.SetWalls(s.geometry.Walls)

	total := m.Laps()
	if s.laps > 0 {
		total = s.laps
	}
	s.controller = vehicle.NewController(m.SpawnHeading)
	s.tracker = race.NewTracker(m.Lap, total)
	s.tracker.Start()

	s.input = core.Input{}
	s.tick = 0
	s.events = nil
	log.Printf("engine: loaded map %s (%d laps, %d walls)", m.ID, total, len(s.geometry.Walls))
}

// SetInput replaces the key snapshot read by the next Step
func (s *Simulation) SetInput(in core.Input) {
	s.input = in
}

// Step advances one tick: controller, lap tracker on the settled position,
// then physics. Non-positive dt is a no-op
func (s *Simulation) Step(dt float64) {
	s.events = s.events[:0]
	if dt <= 0 {
		return
	}
	dt = min(dt, parameter.MaxFrameDelta)

	s.controller.Update(dt, s.input, s.body)
	s.events = append(s.events, s.tracker.Update(s.body.Position(), dt)...)
	s.world.Step(dt)
	s.tick++
}

// Restart respawns the car and resets the race in one call
func (s *Simulation) Restart() {
	s.body.Teleport(s.m.Spawn, vmath.YawQuat(s.m.SpawnHeading))
	s.controller.Reset(s.m.SpawnHeading)
	s.tracker.Restart()
	s.input = core.Input{}
	s.tick = 0
	s.events = s.events[:0]
	log.Printf("engine: restart on %s, race %s", s.m.ID, s.tracker.ID())
}

// SetMap switches to m and starts a new race on it
func (s *Simulation) SetMap(m *track.Map) {
	s.load(m)
}

// Map returns the active map
func (s *Simulation) Map() *track.Map { return s.m }

// Geometry returns the derived shape of the active map
func (s *Simulation) Geometry() *track.Geometry { return s.geometry }

// Tracker exposes the lap tracker for summaries
func (s *Simulation) Tracker() *race.Tracker { return s.tracker }

// Events returns the events raised by the last Step
func (s *Simulation) Events() []race.Event { return s.events }
