package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-racer/parameter"
)

// FrameClock turns wall time into per-tick simulation deltas
// Paused time never reaches the simulation and deltas are clamped
type FrameClock struct {
	mu  sync.Mutex
	src TimeSource

	last time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewFrameClock starts a clock reading from src, nil uses the system clock
func NewFrameClock(src TimeSource) *FrameClock {
	if src == nil {
		src = SystemTime{}
	}
	return &FrameClock{src: src, last: src.Now()}
}

// Tick returns the seconds elapsed since the previous Tick, clamped to
// parameter.MaxFrameDelta; 0 while paused
func (fc *FrameClock) Tick() float64 {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	now := fc.src.Now()
	if fc.isPaused.Load() {
		fc.last = now
		return 0
	}
	dt := now.Sub(fc.last).Seconds()
	fc.last = now
	if dt < 0 {
		return 0
	}
	return min(dt, parameter.MaxFrameDelta)
}

// Pause stops simulation time
func (fc *FrameClock) Pause() {
	if fc.isPaused.CompareAndSwap(false, true) {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		fc.pauseStartTime = fc.src.Now()
	}
}

// Resume continues simulation time, the paused interval is skipped
func (fc *FrameClock) Resume() {
	if fc.isPaused.CompareAndSwap(true, false) {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		now := fc.src.Now()
		if !fc.pauseStartTime.IsZero() {
			fc.totalPausedTime += now.Sub(fc.pauseStartTime)
			fc.pauseStartTime = time.Time{}
		}
		fc.last = now
	}
}

// Toggle flips the pause state and returns the new state
func (fc *FrameClock) Toggle() bool {
	if fc.IsPaused() {
		fc.Resume()
		return false
	}
	fc.Pause()
	return true
}

// IsPaused returns current pause state
func (fc *FrameClock) IsPaused() bool {
	return fc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including a running pause
func (fc *FrameClock) TotalPauseDuration() time.Duration {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	total := fc.totalPausedTime
	if fc.isPaused.Load() && !fc.pauseStartTime.IsZero() {
		total += fc.src.Now().Sub(fc.pauseStartTime)
	}
	return total
}
