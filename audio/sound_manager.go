package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-racer/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager manages all game audio
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	drone       *Drone
	droneCtrl   *beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker, failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.drone, sm.droneCtrl = nil, nil
	sm.initialized = false
}

// IsInitialized reports whether output is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips muting of all cues and the drone, returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	if sm.droneCtrl != nil {
		speaker.Lock()
		sm.droneCtrl.Paused = sm.muted
		speaker.Unlock()
	}
	return sm.muted
}

// PlayLap plays the lap chime
func (sm *SoundManager) PlayLap() {
	sm.play(CreateLapChime(sampleRate))
}

// PlayFinish plays the finish fanfare
func (sm *SoundManager) PlayFinish() {
	sm.play(CreateFinishFanfare(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartEngine starts the drone if it is not running
func (sm *SoundManager) StartEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.droneCtrl != nil {
		return
	}
	sm.drone = NewDrone(sampleRate)
	sm.droneCtrl = &beep.Ctrl{Streamer: sm.drone, Paused: sm.muted}
	speaker.Lock()
	sm.mixer.Add(sm.droneCtrl)
	speaker.Unlock()
}

// SetEngine sets the drone pitch from speed/max speed
func (sm *SoundManager) SetEngine(ratio float64) {
	sm.mu.Lock()
	d := sm.drone
	sm.mu.Unlock()
	if d != nil {
		d.SetRatio(ratio)
	}
}

// StopEngine pauses the drone
func (sm *SoundManager) StopEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.droneCtrl != nil {
		speaker.Lock()
		sm.droneCtrl.Paused = true
		speaker.Unlock()
	}
}
