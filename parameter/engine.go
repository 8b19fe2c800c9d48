package parameter

import "time"

// Simulation timing
const (
	// MaxFrameDelta clamps a single tick so a stalled frame cannot produce an absurd step
	MaxFrameDelta = 0.05

	// DefaultTickRate is the simulation and render rate of the terminal game
	DefaultTickRate = 60

	// FrameUpdateInterval matches DefaultTickRate
	FrameUpdateInterval = time.Second / DefaultTickRate

	// EventQueueSize buffers terminal events between polls
	EventQueueSize = 100
)

// Track defaults
const (
	DefaultMapID        = "gp1"
	DefaultTotalLaps    = 3
	DefaultWallHeight   = 3.0
	DefaultWallThick    = 1.2
	TrackSegments       = 1000
	WallSampleStep      = 4
	CatmullRomTension   = 0.5
	SpawnHeight         = 0.55
	MinimapBoundsMargin = 25.0
)
