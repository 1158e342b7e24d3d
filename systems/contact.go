package systems

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// ContactSystem resolves contacts queued by the physics step of the previous frame
// A contact whose participant was already removed is skipped, so one bullet
// never resolves twice
type ContactSystem struct {
	ctx *engine.GameContext

	statHandled   *atomic.Int64
	statSkipped   *atomic.Int64
	statDestroyed *atomic.Int64
}

// NewContactSystem creates a new contact system
func NewContactSystem(ctx *engine.GameContext) *ContactSystem {
	return &ContactSystem{
		ctx:           ctx,
		statHandled:   ctx.Status.Ints.Get("contacts.handled"),
		statSkipped:   ctx.Status.Ints.Get("contacts.skipped"),
		statDestroyed: ctx.Status.Ints.Get("invaders.destroyed"),
	}
}

// Priority returns the system's priority
func (s *ContactSystem) Priority() int {
	return constants.PriorityContact
}

// EventTypes returns the event types ContactSystem handles
func (s *ContactSystem) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventContact}
}

// HandleEvent resolves a single contact
func (s *ContactSystem) HandleEvent(event engine.GameEvent) {
	if event.Type != engine.EventContact {
		return
	}
	if contact, ok := event.Payload.(*engine.ContactPayload); ok {
		s.Handle(contact)
	}
}

// Update implements System interface (no tick-based logic)
func (s *ContactSystem) Update() {}

// Handle applies the rules of a contact; returns false when it was skipped
func (s *ContactSystem) Handle(c *engine.ContactPayload) bool {
	w := s.ctx.World
	if !w.Alive(c.A) || !w.Alive(c.B) {
		s.statSkipped.Add(1)
		return false
	}

	cats := c.Categories()
	switch {
	case cats.Has(components.CategoryShip) && cats.Has(components.CategoryInvaderBullet):
		ship, bullet, _ := c.Pick(components.CategoryShip)
		s.shipHit(ship, bullet)

	case cats.Has(components.CategoryInvader) && cats.Has(components.CategoryShipBullet):
		invader, bullet, _ := c.Pick(components.CategoryInvader)
		s.invaderHit(invader, bullet)

	default:
		s.statSkipped.Add(1)
		return false
	}

	s.statHandled.Add(1)
	return true
}

func (s *ContactSystem) shipHit(ship, bullet core.Entity) {
	w := s.ctx.World
	s.ctx.PushEvent(engine.EventSoundRequest, core.SoundShipHit)

	health := s.ctx.State.AdjustShipHealth(-s.ctx.Config.Gameplay.ShipHitDamage)
	RefreshHUD(s.ctx)

	w.DestroyEntity(bullet)
	if health <= 0 {
		w.DestroyEntity(ship)
		log.Printf("[CONTACT] ship destroyed")
		return
	}

	w.Ships.Set(ship, components.ShipComponent{Health: health})
	if sprite, ok := w.Sprites.Get(ship); ok {
		sprite.Alpha = health
		w.Sprites.Set(ship, sprite)
	}
}

func (s *ContactSystem) invaderHit(invader, bullet core.Entity) {
	w := s.ctx.World
	s.ctx.PushEvent(engine.EventSoundRequest, core.SoundInvaderHit)

	w.DestroyEntity(invader)
	w.DestroyEntity(bullet)
	s.statDestroyed.Add(1)

	s.ctx.State.AddScore(s.ctx.Config.Gameplay.InvaderKillScore)
	RefreshHUD(s.ctx)
}
