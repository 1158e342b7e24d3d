package physics

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

func spawn(w *engine.World, x, y float64, size core.Size, b components.BodyComponent) core.Entity {
	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionComponent{X: x, Y: y})
	w.Sprites.Set(e, components.SpriteComponent{Size: size, Alpha: 1})
	w.Bodies.Set(e, b)
	return e
}

var (
	invaderBody = components.BodyComponent{Category: components.CategoryInvader}
	bulletBody  = components.BodyComponent{
		Category:    components.CategoryShipBullet,
		ContactTest: components.CategoryInvader,
		Dynamic:     true,
	}
	invaderSize = core.Size{W: 24, H: 16}
	bulletSize  = core.Size{W: 4, H: 8}
)

func TestStepActionsInterpolatesAndRemoves(t *testing.T) {
	w := engine.NewWorld()
	e := spawn(w, 100, 0, bulletSize, bulletBody)

	grace := 50 * time.Millisecond
	StartMove(w, e, core.Point{X: 100, Y: 200}, 0, time.Second, grace)

	tests := []struct {
		now   time.Duration
		wantY float64
		alive bool
	}{
		{250 * time.Millisecond, 50, true},
		{500 * time.Millisecond, 100, true},
		{time.Second, 200, true},
		{time.Second + 40*time.Millisecond, 200, true}, // inside grace
		{time.Second + 50*time.Millisecond, 0, false},
	}

	for _, tt := range tests {
		removed := StepActions(w, tt.now)
		if w.Alive(e) != tt.alive {
			t.Fatalf("At %v: expected alive=%v", tt.now, tt.alive)
		}
		if !tt.alive {
			if len(removed) != 1 || removed[0] != e {
				t.Errorf("At %v: expected removal of %d, got %v", tt.now, e, removed)
			}
			continue
		}
		pos, _ := w.Positions.Get(e)
		if pos.Y != tt.wantY || pos.X != 100 {
			t.Errorf("At %v: expected (100, %v), got (%v, %v)", tt.now, tt.wantY, pos.X, pos.Y)
		}
	}
}

func TestStartMoveWithoutPosition(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	StartMove(w, e, core.Point{X: 1, Y: 1}, 0, time.Second, 0)
	if w.Moves.Has(e) {
		t.Error("Expected no action for an entity without a position")
	}
}

func TestContactDetectorMasks(t *testing.T) {
	tests := []struct {
		name string
		a, b components.BodyComponent
		want int
	}{
		{"bullet tests invader", bulletBody, invaderBody, 1},
		{"invader tests nothing, bullet order reversed", invaderBody, bulletBody, 1},
		{
			"invader bullet ignores invaders",
			components.BodyComponent{Category: components.CategoryInvaderBullet, ContactTest: components.CategoryShip, Dynamic: true},
			invaderBody,
			0,
		},
		{
			"two static bodies",
			components.BodyComponent{Category: components.CategoryShipBullet, ContactTest: components.CategoryInvader},
			invaderBody,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.NewWorld()
			spawn(w, 100, 100, invaderSize, tt.a)
			spawn(w, 102, 104, bulletSize, tt.b)

			got := NewContactDetector().Detect(w)
			if len(got) != tt.want {
				t.Errorf("Expected %d contacts, got %d", tt.want, len(got))
			}
		})
	}
}

func TestContactDetectorCategories(t *testing.T) {
	w := engine.NewWorld()
	inv := spawn(w, 100, 100, invaderSize, invaderBody)
	bullet := spawn(w, 100, 95, bulletSize, bulletBody)

	contacts := NewContactDetector().Detect(w)
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	gotInv, gotBullet, ok := contacts[0].Pick(components.CategoryInvader)
	if !ok || gotInv != inv || gotBullet != bullet {
		t.Errorf("Pick mismatch: %d %d %v", gotInv, gotBullet, ok)
	}
}

func TestContactDetectorNoOverlap(t *testing.T) {
	w := engine.NewWorld()
	spawn(w, 100, 100, invaderSize, invaderBody)
	// Invader frame maxY 108, bullet frame minY 108: touching edges do not overlap
	spawn(w, 100, 112, bulletSize, bulletBody)

	if got := NewContactDetector().Detect(w); len(got) != 0 {
		t.Errorf("Expected no contact for touching frames, got %d", len(got))
	}
}

func TestContactDetectorBeginOnly(t *testing.T) {
	w := engine.NewWorld()
	spawn(w, 100, 100, invaderSize, invaderBody)
	bullet := spawn(w, 100, 100, bulletSize, bulletBody)

	d := NewContactDetector()
	if got := d.Detect(w); len(got) != 1 {
		t.Fatalf("Step 1: expected 1 contact, got %d", len(got))
	}
	if got := d.Detect(w); len(got) != 0 {
		t.Errorf("Step 2: expected persisting contact to be suppressed, got %d", len(got))
	}
	if d.ActiveCount() != 1 {
		t.Errorf("Expected 1 active pair, got %d", d.ActiveCount())
	}

	// Separate, then overlap again: a new contact begins
	w.Positions.Set(bullet, components.PositionComponent{X: 100, Y: 300})
	d.Detect(w)
	if d.ActiveCount() != 0 {
		t.Errorf("Expected no active pairs after separation, got %d", d.ActiveCount())
	}
	w.Positions.Set(bullet, components.PositionComponent{X: 100, Y: 100})
	if got := d.Detect(w); len(got) != 1 {
		t.Errorf("Expected contact to begin again, got %d", len(got))
	}

	d.Reset()
	if d.ActiveCount() != 0 {
		t.Error("Expected Reset to clear active pairs")
	}
}

func TestContactDetectorOneBulletManyInvaders(t *testing.T) {
	w := engine.NewWorld()
	spawn(w, 100, 100, invaderSize, invaderBody)
	spawn(w, 110, 100, invaderSize, invaderBody)
	spawn(w, 105, 100, bulletSize, bulletBody)

	// Both contacts are reported; the contact system skips the second once the bullet is gone
	if got := NewContactDetector().Detect(w); len(got) != 2 {
		t.Errorf("Expected 2 contacts, got %d", len(got))
	}
}

func TestKineticForceAndDamping(t *testing.T) {
	k := Kinetic{Mass: 0.02, Damping: 0.1}

	k.ApplyForce(40, 0.5)
	if d := k.Vel - 1000; d > 1e-9 || d < -1e-9 {
		t.Fatalf("Expected velocity 1000 after force, got %v", k.Vel)
	}

	dx := k.Integrate(0.5)
	if d := k.Vel - 950; d > 1e-9 || d < -1e-9 {
		t.Errorf("Expected damped velocity 950, got %v", k.Vel)
	}
	if d := dx - 475; d > 1e-9 || d < -1e-9 {
		t.Errorf("Expected displacement 475, got %v", dx)
	}

	k.Stop()
	if k.Vel != 0 {
		t.Errorf("Expected zero velocity after Stop, got %v", k.Vel)
	}

	// Massless bodies ignore force
	massless := Kinetic{}
	massless.ApplyForce(40, 1)
	if massless.Vel != 0 {
		t.Errorf("Expected massless body to ignore force, got %v", massless.Vel)
	}
}
