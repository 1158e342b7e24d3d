package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/physics"
)

// PhysicsSystem is the host step: it advances move actions, removes arrived
// bullets and queues the contacts that began for the next frame
// It runs last in the frame
type PhysicsSystem struct {
	ctx      *engine.GameContext
	detector *physics.ContactDetector

	statContacts *atomic.Int64
	statExpired  *atomic.Int64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(ctx *engine.GameContext) *PhysicsSystem {
	return &PhysicsSystem{
		ctx:          ctx,
		detector:     physics.NewContactDetector(),
		statContacts: ctx.Status.Ints.Get("physics.contacts"),
		statExpired:  ctx.Status.Ints.Get("physics.expired"),
	}
}

// Priority returns the system's priority (highest value = runs last)
func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

// Update steps actions then detects contacts
func (s *PhysicsSystem) Update() {
	expired := physics.StepActions(s.ctx.World, s.ctx.Time.Now)
	s.statExpired.Add(int64(len(expired)))

	for _, c := range s.detector.Detect(s.ctx.World) {
		contact := c
		s.ctx.PushEvent(engine.EventContact, &contact)
		s.statContacts.Add(1)
	}
}
