package physics

import (
	"time"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// StartMove attaches a move action to e starting at its current position
// An existing action is replaced
func StartMove(w *engine.World, e core.Entity, to core.Point, now, duration, grace time.Duration) {
	pos, ok := w.Positions.Get(e)
	if !ok {
		return
	}
	w.Moves.Set(e, components.MoveActionComponent{
		From:     pos.Point(),
		To:       to,
		Start:    now,
		Duration: duration,
		Grace:    grace,
	})
}

// StepActions advances every move action to now and destroys entities whose
// action finished and whose grace delay elapsed
// Returns the destroyed entities in action order
func StepActions(w *engine.World, now time.Duration) []core.Entity {
	var expired []core.Entity

	for _, e := range w.Moves.All() {
		action, ok := w.Moves.Get(e)
		if !ok {
			continue
		}

		if action.Expired(now) {
			expired = append(expired, e)
			continue
		}
		w.Positions.Set(e, components.PositionAt(action.PositionAt(now)))
	}

	for _, e := range expired {
		w.DestroyEntity(e)
	}
	return expired
}
