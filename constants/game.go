package constants

import "time"

// Scene
const (
	// SceneWidth and SceneHeight are the default scene dimensions in points
	SceneWidth  = 480.0
	SceneHeight = 640.0
)

// Invader grid
const (
	InvaderWidth  = 24.0
	InvaderHeight = 16.0

	InvaderGridSpacingX = 12.0
	InvaderGridSpacingY = 12.0

	InvaderRowCount = 6
	InvaderColCount = 6

	// InvaderStep is the displacement applied to every invader per movement tick
	InvaderStep = 10.0

	// TimePerMove gates invader movement ticks on the scene clock
	TimePerMove = 1 * time.Second

	// InvaderEdgeMargin is how close a frame edge may get to the scene border before the grid turns
	InvaderEdgeMargin = 1.0
)

// Ship
const (
	ShipWidth  = 30.0
	ShipHeight = 16.0

	// ShipMaxHealth is the starting health of a new ship
	ShipMaxHealth = 1.0

	// ShipHitDamage is subtracted from health on each invader bullet hit
	ShipHitDamage = 0.334

	// ShipKeyStep is the horizontal nudge in points for one keyboard move
	ShipKeyStep = 12.0

	// TiltScale converts a tilt reading into a horizontal force on the ship
	TiltScale = 40.0
)

// Bullets
const (
	BulletWidth  = 4.0
	BulletHeight = 8.0

	// ShipBulletDuration is the travel time of a ship bullet to the top of the scene
	ShipBulletDuration = 1 * time.Second

	// InvaderBulletDuration is the travel time of an invader bullet to the bottom of the scene
	InvaderBulletDuration = 2 * time.Second

	// BulletRemoveGrace is the delay after arrival before a bullet is removed (3 frames at 60 FPS)
	BulletRemoveGrace = 50 * time.Millisecond
)

// Scoring
const (
	// InvaderKillScore is awarded per invader destroyed
	InvaderKillScore = 100

	// MinInvaderBottomHeight ends the game when an invader frame reaches it (twice ship height)
	MinInvaderBottomHeight = 2 * ShipHeight
)

// Entity names, used for HUD debug output and logs
const (
	InvaderName       = "invader"
	ShipName          = "ship"
	ShipBulletName    = "shipFiredBullet"
	InvaderBulletName = "invaderFiredBullet"
)

// Glyphs painted into every cell a sprite covers
const (
	InvaderRune = '█'
	ShipRune    = '▲'
	BulletRune  = '┃'
)

// Tilt integration of the ship
const (
	// ShipMass divides the tilt force into an acceleration
	ShipMass = 0.02

	// ShipLinearDamping is the fraction of ship velocity lost per second
	ShipLinearDamping = 0.1
)
