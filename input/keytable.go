package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc, Enter)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentTap,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			'm': IntentMute,
			's': IntentToggleStatus,
			' ': IntentTap,
			'h': IntentMoveLeft,
			'l': IntentMoveRight,
		},
	}
}

// Lookup returns the intent bound to the key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
