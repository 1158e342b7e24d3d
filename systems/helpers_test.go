package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// newTestContext creates a game context with a fixed random seed
func newTestContext(t *testing.T, mutate func(*config.Config)) *engine.GameContext {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	ctx := engine.NewGameContext(cfg, engine.WithRand(engine.NewRand(42)))
	ctx.Time.Advance(0)
	return ctx
}

// placeInvader adds a single invader centred at (x, y)
func placeInvader(ctx *engine.GameContext, x, y float64) core.Entity {
	w := ctx.World
	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionComponent{X: x, Y: y})
	w.Sprites.Set(e, components.SpriteComponent{Size: core.Size{W: 24, H: 16}, Alpha: 1})
	w.Bodies.Set(e, components.BodyComponent{Category: components.CategoryInvader})
	w.Invaders.Set(e, components.InvaderComponent{})
	return e
}

// drainEvents consumes the queue and returns the events of type t
func drainEvents(ctx *engine.GameContext, t engine.EventType) []engine.GameEvent {
	var out []engine.GameEvent
	for _, ev := range ctx.Queue.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// advance moves the scene clock forward by d
func advance(ctx *engine.GameContext, d time.Duration) {
	ctx.Time.Advance(ctx.Time.Now + d)
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
