package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
)

// Lap chime
const (
	LapChimeFreq     = 880.0
	LapChimeDuration = 180 * time.Millisecond
	LapChimeVolume   = -1.0
)

// Finish fanfare, one note per entry
var FinishNotes = []float64{523.25, 659.25, 783.99, 1046.5}

const (
	FinishNoteDuration = 140 * time.Millisecond
	FinishVolume       = -0.5
)

// Engine drone
const (
	EngineIdleFreq = 55.0
	EngineTopFreq  = 220.0
	EngineGain     = 0.08
)
