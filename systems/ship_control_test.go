package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/engine"
)

func shipX(ctx *engine.GameContext) float64 {
	pos, _ := ctx.World.Positions.Get(ctx.ShipEntity)
	return pos.X
}

func TestShipControlMoveTo(t *testing.T) {
	tests := []struct {
		x       float64
		want    float64
		clamped bool
	}{
		{100, 100, false},
		{15, 15, false},
		{0, 15, true},
		{-50, 15, true},
		{465, 465, false},
		{479, 465, true},
	}

	for _, tt := range tests {
		ctx := newTestContext(t, nil)
		SetupShip(ctx)
		s := NewShipControlSystem(ctx)

		if got := s.MoveTo(tt.x); got != tt.clamped {
			t.Errorf("MoveTo(%v): expected clamped=%v", tt.x, tt.clamped)
		}
		if got := shipX(ctx); got != tt.want {
			t.Errorf("MoveTo(%v): expected x %v, got %v", tt.x, tt.want, got)
		}
	}
}

func TestShipControlEvents(t *testing.T) {
	ctx := newTestContext(t, nil)
	SetupShip(ctx)
	s := NewShipControlSystem(ctx)
	ctx.Router.Register(s)

	ctx.PushEvent(engine.EventShipMove, &engine.ShipMovePayload{X: 300, Absolute: true})
	ctx.PushEvent(engine.EventShipMove, &engine.ShipMovePayload{X: -12})
	ctx.Router.DispatchAll()

	if got := shipX(ctx); got != 288 {
		t.Errorf("Expected x 288 after drag and key nudge, got %v", got)
	}

	pos, _ := ctx.World.Positions.Get(ctx.ShipEntity)
	if pos.Y != 8 {
		t.Errorf("Ship must only move horizontally, y=%v", pos.Y)
	}
}

func TestShipControlTiltDisabled(t *testing.T) {
	ctx := newTestContext(t, nil)
	SetupShip(ctx)
	s := NewShipControlSystem(ctx)

	s.HandleEvent(engine.GameEvent{Type: engine.EventTilt, Payload: 1.0})
	advance(ctx, 16*time.Millisecond)
	s.Update()

	if got := shipX(ctx); got != 240 {
		t.Errorf("Expected tilt ignored when disabled, x=%v", got)
	}
}

func TestShipControlTiltEnabled(t *testing.T) {
	ctx := newTestContext(t, func(c *config.Config) { c.Input.Tilt = true })
	SetupShip(ctx)
	s := NewShipControlSystem(ctx)

	s.HandleEvent(engine.GameEvent{Type: engine.EventTilt, Payload: 1.0})
	advance(ctx, 16*time.Millisecond)
	s.Update()

	if s.Velocity() <= 0 {
		t.Fatalf("Expected positive velocity after right tilt, got %v", s.Velocity())
	}
	x1 := shipX(ctx)
	if x1 <= 240 {
		t.Errorf("Expected ship to move right, x=%v", x1)
	}

	// Velocity carries without new readings
	advance(ctx, 16*time.Millisecond)
	s.Update()
	if x2 := shipX(ctx); x2 <= x1 {
		t.Errorf("Expected ship to keep drifting right, %v -> %v", x1, x2)
	}
}

func TestShipControlTiltStopsAtEdge(t *testing.T) {
	ctx := newTestContext(t, func(c *config.Config) { c.Input.Tilt = true })
	SetupShip(ctx)
	s := NewShipControlSystem(ctx)
	s.MoveTo(460)

	s.HandleEvent(engine.GameEvent{Type: engine.EventTilt, Payload: 1.0})
	advance(ctx, 100*time.Millisecond)
	s.Update()

	if got := shipX(ctx); got != 465 {
		t.Errorf("Expected ship clamped at 465, got %v", got)
	}
	if s.Velocity() != 0 {
		t.Errorf("Expected velocity reset at edge, got %v", s.Velocity())
	}
}
