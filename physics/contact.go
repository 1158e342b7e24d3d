package physics

import (
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// pairKey is an unordered entity pair, low id first
type pairKey struct {
	lo, hi core.Entity
}

func makePair(a, b core.Entity) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

type body struct {
	entity core.Entity
	body   components.BodyComponent
	frame  core.Rect
}

// ContactDetector reports contacts between overlapping bodies
// A pair that stays in contact across steps is reported once, on the step it began
// At least one body of a pair must be dynamic
type ContactDetector struct {
	active map[pairKey]struct{}
	bodies []body
}

// NewContactDetector creates a detector with no active contacts
func NewContactDetector() *ContactDetector {
	return &ContactDetector{
		active: make(map[pairKey]struct{}),
	}
}

// Detect tests every eligible pair and returns the contacts that began this step
// Entities need a position, a sprite (for the frame) and a body
func (d *ContactDetector) Detect(w *engine.World) []engine.ContactPayload {
	d.bodies = d.bodies[:0]
	for _, e := range w.Bodies.All() {
		b, ok := w.Bodies.Get(e)
		if !ok {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		sprite, ok := w.Sprites.Get(e)
		if !ok {
			continue
		}
		d.bodies = append(d.bodies, body{entity: e, body: b, frame: sprite.Frame(pos)})
	}

	current := make(map[pairKey]struct{}, len(d.active))
	var began []engine.ContactPayload

	for i := 0; i < len(d.bodies); i++ {
		a := &d.bodies[i]
		for j := i + 1; j < len(d.bodies); j++ {
			b := &d.bodies[j]

			if !a.body.Dynamic && !b.body.Dynamic {
				continue
			}
			if !a.body.Tests(b.body) {
				continue
			}
			if !a.frame.Intersects(b.frame) {
				continue
			}

			key := makePair(a.entity, b.entity)
			current[key] = struct{}{}
			if _, seen := d.active[key]; seen {
				continue
			}
			began = append(began, engine.ContactPayload{
				A:         a.entity,
				B:         b.entity,
				CategoryA: a.body.Category,
				CategoryB: b.body.Category,
			})
		}
	}

	d.active = current
	return began
}

// ActiveCount returns the number of pairs currently in contact
func (d *ContactDetector) ActiveCount() int {
	return len(d.active)
}

// Reset forgets all active contacts
func (d *ContactDetector) Reset() {
	d.active = make(map[pairKey]struct{})
}
