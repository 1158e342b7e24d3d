// Package engine provides the ECS world, event infrastructure, frame clock
// and shared game state used by every scene.
//
// Event Flow Pattern:
//  1. Producer pushes an event: world.PushEvent(EventType, payload)
//  2. Event is stored in the lock-free ring buffer (capacity: 256 events)
//  3. At the start of the next frame the Router consumes the queue and
//     calls every handler registered for the event type, in FIFO order
//
// Producers are the input goroutine (taps, drags), the physics step
// (contacts) and systems (sound requests). The frame goroutine is the only
// consumer.
package engine

import (
	"strings"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventTap signals a single tap (mouse click, space bar)
	// Trigger: InputHandler | Consumer: ShipFireSystem, GameOverScene | Payload: nil
	EventTap EventType = iota

	// EventShipMove requests a horizontal ship position change
	// Trigger: InputHandler (drag, arrow keys) | Consumer: ShipControlSystem
	// Payload: *ShipMovePayload
	EventShipMove

	// EventTilt reports a simulated accelerometer reading
	// Trigger: InputHandler when tilt input is enabled | Consumer: ShipControlSystem
	// Payload: float64 in [-1, 1]
	EventTilt

	// EventContact reports the beginning of a contact between two bodies
	// Trigger: PhysicsSystem | Consumer: ContactSystem | Payload: *ContactPayload
	EventContact

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback | Consumer: AudioSystem
	// Payload: core.SoundType
	EventSoundRequest

	// EventPauseToggle pauses or resumes the scene clock
	// Trigger: InputHandler | Consumer: Director | Payload: nil
	EventPauseToggle

	// EventMuteToggle mutes or unmutes audio
	// Trigger: InputHandler | Consumer: Director | Payload: nil
	EventMuteToggle

	// EventStatusToggle shows or hides the debug status line
	// Trigger: InputHandler | Consumer: Director | Payload: nil
	EventStatusToggle

	// EventGameOver marks the first frame a terminal condition was detected
	// Trigger: GameOverSystem | Consumer: observers (logging, tests) | Payload: *GameOverPayload
	EventGameOver
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventTap:
		return "Tap"
	case EventShipMove:
		return "ShipMove"
	case EventTilt:
		return "Tilt"
	case EventContact:
		return "Contact"
	case EventSoundRequest:
		return "SoundRequest"
	case EventPauseToggle:
		return "PauseToggle"
	case EventMuteToggle:
		return "MuteToggle"
	case EventStatusToggle:
		return "StatusToggle"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with associated metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame number when the event was created
}

// ShipMovePayload carries a ship position request in scene points
// Absolute sets X directly (drag); otherwise X is a delta (keys)
type ShipMovePayload struct {
	X        float64
	Absolute bool
}

// ContactPayload identifies the two bodies of a contact and their categories
type ContactPayload struct {
	A, B      core.Entity
	CategoryA components.Category
	CategoryB components.Category
}

// Categories returns the union of both categories
func (c *ContactPayload) Categories() components.Category {
	return c.CategoryA | c.CategoryB
}

// Pick returns the participant in category cat and the other participant
// ok is false when neither body is in cat
func (c *ContactPayload) Pick(cat components.Category) (match, other core.Entity, ok bool) {
	switch {
	case c.CategoryA.Has(cat):
		return c.A, c.B, true
	case c.CategoryB.Has(cat):
		return c.B, c.A, true
	default:
		return core.NoEntity, core.NoEntity, false
	}
}

// GameOverReason records which terminal conditions held
type GameOverReason uint8

const (
	ReasonInvadersCleared GameOverReason = 1 << iota
	ReasonInvaderTooLow
	ReasonShipDestroyed
)

// String lists the set reasons joined by '+'
func (r GameOverReason) String() string {
	var parts []string
	if r&ReasonInvadersCleared != 0 {
		parts = append(parts, "cleared")
	}
	if r&ReasonInvaderTooLow != 0 {
		parts = append(parts, "tooLow")
	}
	if r&ReasonShipDestroyed != 0 {
		parts = append(parts, "shipDestroyed")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// GameOverPayload describes the end of a game
type GameOverPayload struct {
	Reason GameOverReason
	Score  int
}
