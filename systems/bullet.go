package systems

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/physics"
)

var bulletSize = core.Size{W: constants.BulletWidth, H: constants.BulletHeight}

// FindBullet returns the live bullet fired by owner, if any
func FindBullet(w *engine.World, owner components.BulletOwner) (core.Entity, bool) {
	for _, e := range w.Bullets.All() {
		if b, ok := w.Bullets.Get(e); ok && b.Owner == owner {
			return e, true
		}
	}
	return core.NoEntity, false
}

// CountBullets returns the number of live bullets fired by owner
func CountBullets(w *engine.World, owner components.BulletOwner) int {
	n := 0
	for _, e := range w.Bullets.All() {
		if b, ok := w.Bullets.Get(e); ok && b.Owner == owner {
			n++
		}
	}
	return n
}

// spawnBullet creates a bullet at from travelling to dest over duration and
// requests its firing sound
func spawnBullet(ctx *engine.GameContext, owner components.BulletOwner, from, dest core.Point, duration time.Duration) core.Entity {
	w := ctx.World

	b := components.BodyComponent{Dynamic: true}
	var name string
	var color tcell.Color
	var sound core.SoundType
	switch owner {
	case components.ShipFired:
		b.Category = components.CategoryShipBullet
		b.ContactTest = components.CategoryInvader
		name, color, sound = constants.ShipBulletName, tcell.ColorGreen, core.SoundShipBullet
	default:
		b.Category = components.CategoryInvaderBullet
		b.ContactTest = components.CategoryShip
		name, color, sound = constants.InvaderBulletName, tcell.ColorFuchsia, core.SoundInvaderBullet
	}

	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionAt(from))
	w.Sprites.Set(e, components.SpriteComponent{
		Name:  name,
		Size:  bulletSize,
		Color: color,
		Rune:  constants.BulletRune,
		Alpha: 1,
	})
	w.Bodies.Set(e, b)
	w.Bullets.Set(e, components.BulletComponent{Owner: owner, Destination: dest})
	physics.StartMove(w, e, dest, ctx.Time.Now, duration, ctx.Config.Gameplay.BulletRemoveGrace.Duration)

	ctx.PushEvent(engine.EventSoundRequest, sound)
	return e
}
