package engine

import (
	"sync"
	"time"
)

// TimeSource supplies wall time to the frame clock
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// MockTime is a controllable time source for tests
type MockTime struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTime creates a mock time source at startTime
func NewMockTime(startTime time.Time) *MockTime {
	return &MockTime{currentTime: startTime}
}

func (m *MockTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time
func (m *MockTime) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the current time forward by d
func (m *MockTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
