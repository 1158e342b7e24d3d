package engine

import (
	"sync"
	"time"
)

// PausableClock measures scene time: wall time since Start minus time spent paused
// Its Elapsed value is the currentTime handed to the frame callback
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider
	start    time.Time

	paused          bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock that starts counting immediately
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Restart resets elapsed time to zero and clears pause state
func (pc *PausableClock) Restart() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.start = pc.provider.Now()
	pc.paused = false
	pc.pauseStart = time.Time{}
	pc.totalPausedTime = 0
}

// Elapsed returns scene time, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.provider.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	return now.Sub(pc.start) - pc.totalPausedTime
}

// Pause stops scene time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues scene time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
