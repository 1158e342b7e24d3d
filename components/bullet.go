package components

import "github.com/lixenwraith/vi-invaders/core"

// BulletOwner identifies who fired a bullet
type BulletOwner int

const (
	ShipFired BulletOwner = iota
	InvaderFired
)

// String returns the owner name
func (o BulletOwner) String() string {
	if o == ShipFired {
		return "ship"
	}
	return "invader"
}

// BulletComponent represents a projectile travelling to a fixed destination
type BulletComponent struct {
	Owner       BulletOwner
	Destination core.Point
}
