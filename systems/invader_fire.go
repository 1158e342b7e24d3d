package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// InvaderFireSystem keeps one invader bullet in flight, fired by a random live invader
type InvaderFireSystem struct {
	ctx *engine.GameContext

	statFired *atomic.Int64
}

// NewInvaderFireSystem creates a new invader fire system
func NewInvaderFireSystem(ctx *engine.GameContext) *InvaderFireSystem {
	return &InvaderFireSystem{
		ctx:       ctx,
		statFired: ctx.Status.Ints.Get("bullets.invader"),
	}
}

// Priority returns the system's priority
func (s *InvaderFireSystem) Priority() int {
	return constants.PriorityInvaderAI
}

// Update fires when no invader bullet exists
func (s *InvaderFireSystem) Update() {
	s.Fire()
}

// Fire spawns a bullet below a uniformly chosen invader
// Returns the new bullet or NoEntity when a bullet exists or no invader is left
func (s *InvaderFireSystem) Fire() core.Entity {
	w := s.ctx.World
	if _, exists := FindBullet(w, components.InvaderFired); exists {
		return core.NoEntity
	}

	invaders := w.Invaders.All()
	if len(invaders) == 0 {
		return core.NoEntity
	}
	shooter := invaders[s.ctx.Rand.IntN(len(invaders))]

	pos, ok := w.Positions.Get(shooter)
	if !ok {
		return core.NoEntity
	}
	sprite, _ := w.Sprites.Get(shooter)

	from := core.Point{X: pos.X, Y: pos.Y - sprite.Size.H/2 + bulletSize.H/2}
	dest := core.Point{X: pos.X, Y: -bulletSize.H / 2}

	s.statFired.Add(1)
	return spawnBullet(s.ctx, components.InvaderFired, from, dest, s.ctx.Config.Gameplay.InvaderBulletDuration.Duration)
}
