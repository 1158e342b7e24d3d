package components

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/core"
)

func TestInvaderTypeForRow(t *testing.T) {
	tests := []struct {
		row   int
		typ   InvaderType
		color tcell.Color
	}{
		{0, InvaderA, tcell.ColorRed},
		{1, InvaderB, tcell.ColorGreen},
		{2, InvaderC, tcell.ColorBlue},
		{3, InvaderA, tcell.ColorRed},
		{5, InvaderC, tcell.ColorBlue},
	}

	for _, tt := range tests {
		got := InvaderTypeForRow(tt.row)
		if got != tt.typ {
			t.Errorf("row %d: expected type %v, got %v", tt.row, tt.typ, got)
		}
		if got.Color() != tt.color {
			t.Errorf("row %d: expected color %v, got %v", tt.row, tt.color, got.Color())
		}
	}
}

func TestBodyTests(t *testing.T) {
	shipBullet := BodyComponent{Category: CategoryShipBullet, ContactTest: CategoryInvader}
	invader := BodyComponent{Category: CategoryInvader}
	ship := BodyComponent{Category: CategoryShip, Collision: CategorySceneEdge}
	invaderBullet := BodyComponent{Category: CategoryInvaderBullet, ContactTest: CategoryShip}

	tests := []struct {
		name string
		a, b BodyComponent
		want bool
	}{
		{"Ship bullet vs invader", shipBullet, invader, true},
		{"Invader vs ship bullet", invader, shipBullet, true},
		{"Invader bullet vs ship", invaderBullet, ship, true},
		{"Ship bullet vs ship", shipBullet, ship, false},
		{"Invader bullet vs invader", invaderBullet, invader, false},
		{"Invader vs invader", invader, invader, false},
		{"Bullet vs bullet", shipBullet, invaderBullet, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Tests(tt.b); got != tt.want {
				t.Errorf("Tests = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveActionProgress(t *testing.T) {
	a := MoveActionComponent{
		From:     core.Point{X: 10, Y: 0},
		To:       core.Point{X: 10, Y: 100},
		Start:    time.Second,
		Duration: time.Second,
		Grace:    50 * time.Millisecond,
	}

	if p := a.PositionAt(500 * time.Millisecond); p.Y != 0 {
		t.Errorf("before start expected Y=0, got %v", p.Y)
	}
	if p := a.PositionAt(1500 * time.Millisecond); p.Y != 50 {
		t.Errorf("halfway expected Y=50, got %v", p.Y)
	}
	if p := a.PositionAt(3 * time.Second); p.Y != 100 {
		t.Errorf("after arrival expected Y=100, got %v", p.Y)
	}

	if a.Expired(2 * time.Second) {
		t.Error("must not expire before grace elapses")
	}
	if !a.Expired(2*time.Second + 50*time.Millisecond) {
		t.Error("expected expiry once grace elapsed")
	}
}

func TestMoveActionZeroDuration(t *testing.T) {
	a := MoveActionComponent{To: core.Point{X: 5, Y: 5}}
	if a.Progress(0) != 1 {
		t.Errorf("zero duration should be complete immediately")
	}
}

func TestSpriteFrame(t *testing.T) {
	s := SpriteComponent{Size: core.Size{W: 4, H: 8}}
	f := s.Frame(PositionComponent{X: 2, Y: 4})
	if f.MinX != 0 || f.MinY != 0 || f.MaxX != 4 || f.MaxY != 8 {
		t.Errorf("unexpected frame %+v", f)
	}
}
