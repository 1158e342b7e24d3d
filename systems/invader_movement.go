package systems

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// InvaderDirection is the movement state shared by the whole grid
type InvaderDirection int

const (
	DirectionRight InvaderDirection = iota
	DirectionLeft
	DirectionDownThenRight
	DirectionDownThenLeft
	DirectionNone
)

// String returns the direction name
func (d InvaderDirection) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	case DirectionDownThenRight:
		return "downThenRight"
	case DirectionDownThenLeft:
		return "downThenLeft"
	case DirectionNone:
		return "none"
	default:
		return "unknown"
	}
}

// NextDirection returns the direction for the next tick given the horizontal
// extent of all invader frames
func NextDirection(current InvaderDirection, minX, maxX, sceneWidth float64) InvaderDirection {
	switch current {
	case DirectionRight:
		if maxX >= sceneWidth-constants.InvaderEdgeMargin {
			return DirectionDownThenLeft
		}
	case DirectionLeft:
		if minX <= constants.InvaderEdgeMargin {
			return DirectionDownThenRight
		}
	case DirectionDownThenLeft:
		return DirectionLeft
	case DirectionDownThenRight:
		return DirectionRight
	}
	return current
}

// Offset returns the displacement applied by one tick in this direction
func (d InvaderDirection) Offset(step float64) (dx, dy float64) {
	switch d {
	case DirectionRight:
		return step, 0
	case DirectionLeft:
		return -step, 0
	case DirectionDownThenRight, DirectionDownThenLeft:
		return 0, -step
	default:
		return 0, 0
	}
}

// InvaderMovementSystem steps the grid once per time-per-move on the scene clock
type InvaderMovementSystem struct {
	ctx *engine.GameContext

	direction      InvaderDirection
	timeOfLastMove time.Duration

	statTicks *atomic.Int64
}

// NewInvaderMovementSystem creates the system; the grid starts moving right
func NewInvaderMovementSystem(ctx *engine.GameContext) *InvaderMovementSystem {
	return &InvaderMovementSystem{
		ctx:       ctx,
		direction: DirectionRight,
		statTicks: ctx.Status.Ints.Get("invaders.ticks"),
	}
}

// Priority returns the system's priority
func (s *InvaderMovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Direction returns the current movement state
func (s *InvaderMovementSystem) Direction() InvaderDirection {
	return s.direction
}

// SetDirection overrides the movement state
func (s *InvaderMovementSystem) SetDirection(d InvaderDirection) {
	s.direction = d
}

// Update evaluates the direction and moves every invader when a tick is due
func (s *InvaderMovementSystem) Update() {
	now := s.ctx.Time.Now
	if now-s.timeOfLastMove < s.ctx.Config.Grid.TimePerMove.Duration {
		return
	}

	w := s.ctx.World
	invaders := w.Invaders.All()
	if len(invaders) == 0 {
		return
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, e := range invaders {
		frame, ok := s.frame(e)
		if !ok {
			continue
		}
		minX = math.Min(minX, frame.MinX)
		maxX = math.Max(maxX, frame.MaxX)
	}
	s.direction = NextDirection(s.direction, minX, maxX, s.ctx.Width)

	dx, dy := s.direction.Offset(s.ctx.Config.Grid.Step)
	for _, e := range invaders {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		pos.X += dx
		pos.Y += dy
		w.Positions.Set(e, pos)
	}

	s.timeOfLastMove = now
	s.statTicks.Add(1)
}

func (s *InvaderMovementSystem) frame(e core.Entity) (core.Rect, bool) {
	pos, ok := s.ctx.World.Positions.Get(e)
	if !ok {
		return core.Rect{}, false
	}
	sprite, ok := s.ctx.World.Sprites.Get(e)
	if !ok {
		return core.Rect{}, false
	}
	return sprite.Frame(pos), true
}
