package systems

import (
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/physics"
)

// ShipControlSystem moves the ship horizontally from drag, key and tilt input
// The ship frame never leaves the scene
type ShipControlSystem struct {
	ctx *engine.GameContext

	// Tilt integration state
	tilt float64
	body physics.Kinetic
}

// NewShipControlSystem creates a new ship control system
func NewShipControlSystem(ctx *engine.GameContext) *ShipControlSystem {
	s := &ShipControlSystem{ctx: ctx}
	s.body = physics.Kinetic{
		Mass:    constants.ShipMass,
		Damping: constants.ShipLinearDamping,
	}
	return s
}

// Priority returns the system's priority
func (s *ShipControlSystem) Priority() int {
	return constants.PriorityShipInput
}

// EventTypes returns the event types ShipControlSystem handles
func (s *ShipControlSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventShipMove,
		engine.EventTilt,
	}
}

// HandleEvent processes move requests and tilt readings
func (s *ShipControlSystem) HandleEvent(event engine.GameEvent) {
	switch event.Type {
	case engine.EventShipMove:
		payload, ok := event.Payload.(*engine.ShipMovePayload)
		if !ok {
			return
		}
		if payload.Absolute {
			s.MoveTo(payload.X)
		} else {
			s.MoveBy(payload.X)
		}

	case engine.EventTilt:
		if !s.ctx.Config.Input.Tilt {
			return
		}
		if a, ok := event.Payload.(float64); ok {
			s.tilt = core.Clamp(s.tilt+a, -1, 1)
		}
	}
}

// Update integrates the tilt force into ship velocity and position
// A reading acts for a single frame
func (s *ShipControlSystem) Update() {
	if !s.ctx.Config.Input.Tilt {
		return
	}
	dt := s.ctx.Time.DeltaTime.Seconds()
	if dt <= 0 {
		s.tilt = 0
		return
	}

	s.body.ApplyForce(s.tilt*constants.TiltScale, dt)
	s.tilt = 0
	dx := s.body.Integrate(dt)

	if s.body.Vel == 0 {
		return
	}
	pos, ok := s.ctx.World.Positions.Get(s.ctx.ShipEntity)
	if !ok {
		s.body.Stop()
		return
	}
	if clamped := s.MoveTo(pos.X + dx); clamped {
		// Scene edge stops the ship
		s.body.Stop()
	}
}

// Velocity returns the current tilt-driven ship speed in points per second
func (s *ShipControlSystem) Velocity() float64 {
	return s.body.Vel
}

// MoveBy shifts the ship horizontally by dx
func (s *ShipControlSystem) MoveBy(dx float64) bool {
	pos, ok := s.ctx.World.Positions.Get(s.ctx.ShipEntity)
	if !ok {
		return false
	}
	return s.MoveTo(pos.X + dx)
}

// MoveTo sets the ship centre x, clamped so the frame stays inside the scene
// Returns true when the requested x was clamped
func (s *ShipControlSystem) MoveTo(x float64) bool {
	w := s.ctx.World
	e := s.ctx.ShipEntity
	pos, ok := w.Positions.Get(e)
	if !ok {
		return false
	}
	sprite, _ := w.Sprites.Get(e)

	half := sprite.Size.W / 2
	clampedX := core.Clamp(x, half, s.ctx.Width-half)
	w.Positions.Set(e, components.PositionComponent{X: clampedX, Y: pos.Y})
	return clampedX != x
}
