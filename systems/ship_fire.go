package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// ShipFireSystem fires a ship bullet for each tap while none is in flight
type ShipFireSystem struct {
	ctx *engine.GameContext

	statFired *atomic.Int64
}

// NewShipFireSystem creates a new ship fire system
func NewShipFireSystem(ctx *engine.GameContext) *ShipFireSystem {
	return &ShipFireSystem{
		ctx:       ctx,
		statFired: ctx.Status.Ints.Get("bullets.ship"),
	}
}

// Priority returns the system's priority
func (s *ShipFireSystem) Priority() int {
	return constants.PriorityShipFire
}

// EventTypes returns the event types ShipFireSystem handles
func (s *ShipFireSystem) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventTap}
}

// HandleEvent fires on tap
func (s *ShipFireSystem) HandleEvent(event engine.GameEvent) {
	if event.Type == engine.EventTap {
		s.Fire()
	}
}

// Update implements System interface (no tick-based logic)
func (s *ShipFireSystem) Update() {}

// Fire spawns a ship bullet above the ship; no-op while one exists or the ship is gone
// Returns the new bullet or NoEntity
func (s *ShipFireSystem) Fire() core.Entity {
	w := s.ctx.World
	if _, exists := FindBullet(w, components.ShipFired); exists {
		return core.NoEntity
	}
	ship, ok := w.Positions.Get(s.ctx.ShipEntity)
	if !ok || !s.ctx.ShipAlive() {
		return core.NoEntity
	}
	sprite, _ := w.Sprites.Get(s.ctx.ShipEntity)

	from := core.Point{X: ship.X, Y: ship.Y + sprite.Size.H - bulletSize.H/2}
	dest := core.Point{X: ship.X, Y: s.ctx.Height + bulletSize.H/2}

	s.statFired.Add(1)
	return spawnBullet(s.ctx, components.ShipFired, from, dest, s.ctx.Config.Gameplay.ShipBulletDuration.Duration)
}
