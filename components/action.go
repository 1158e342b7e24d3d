package components

import (
	"time"

	"github.com/lixenwraith/vi-invaders/core"
)

// MoveActionComponent moves an entity linearly from From to To over Duration,
// then removes it once Grace has elapsed after arrival
// Times are on the scene clock
type MoveActionComponent struct {
	From     core.Point
	To       core.Point
	Start    time.Duration
	Duration time.Duration
	Grace    time.Duration
}

// Progress returns the fraction of travel completed at now, in [0, 1]
func (a MoveActionComponent) Progress(now time.Duration) float64 {
	if a.Duration <= 0 {
		return 1
	}
	t := float64(now-a.Start) / float64(a.Duration)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// PositionAt returns the interpolated position at now
func (a MoveActionComponent) PositionAt(now time.Duration) core.Point {
	return a.From.Lerp(a.To, a.Progress(now))
}

// Expired reports whether arrival and grace have both elapsed
func (a MoveActionComponent) Expired(now time.Duration) bool {
	return now >= a.Start+a.Duration+a.Grace
}
