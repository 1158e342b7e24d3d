package engine

import (
	"testing"

	"github.com/lixenwraith/vi-invaders/components"
)

// TestQueryBuilder verifies component intersection
func TestQueryBuilder(t *testing.T) {
	w := NewWorld()

	e1 := w.CreateEntity()
	w.Positions.Set(e1, components.PositionComponent{X: 1, Y: 1})
	w.Bullets.Set(e1, components.BulletComponent{Owner: components.ShipFired})

	e2 := w.CreateEntity()
	w.Positions.Set(e2, components.PositionComponent{X: 2, Y: 2})

	e3 := w.CreateEntity()
	w.Bullets.Set(e3, components.BulletComponent{Owner: components.InvaderFired})

	results := w.Query().
		With(w.Positions).
		With(w.Bullets).
		Execute()

	if len(results) != 1 || results[0] != e1 {
		t.Errorf("Expected [%d], got %v", e1, results)
	}

	posResults := w.Query().With(w.Positions).Execute()
	if len(posResults) != 2 {
		t.Errorf("Expected 2 position results, got %d", len(posResults))
	}

	if empty := w.Query().Execute(); len(empty) != 0 {
		t.Errorf("Expected 0 empty results, got %d", len(empty))
	}
}

// TestQueryBuilderCached verifies repeated Execute returns the same result
func TestQueryBuilderCached(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionComponent{})

	q := w.Query().With(w.Positions)
	first := q.Execute()

	w.Positions.Set(w.CreateEntity(), components.PositionComponent{})
	second := q.Execute()

	if len(first) != 1 || len(second) != 1 {
		t.Errorf("Expected cached single result, got %v and %v", first, second)
	}
}

// TestQueryBuilderPanic verifies With after Execute panics
func TestQueryBuilderPanic(t *testing.T) {
	w := NewWorld()
	q := w.Query().With(w.Positions)
	q.Execute()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when modifying executed query")
		}
	}()
	q.With(w.Sprites)
}
