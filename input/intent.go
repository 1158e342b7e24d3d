// Package input translates terminal events into game events.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit         // q, Esc, Ctrl+C
	IntentPause        // p
	IntentMute         // m
	IntentToggleStatus // s

	// Gameplay
	IntentTap       // Space, Enter, mouse click
	IntentMoveLeft  // h, Left
	IntentMoveRight // l, Right
)

// String returns the intent name
func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentMute:
		return "mute"
	case IntentToggleStatus:
		return "status"
	case IntentTap:
		return "tap"
	case IntentMoveLeft:
		return "left"
	case IntentMoveRight:
		return "right"
	default:
		return "none"
	}
}
