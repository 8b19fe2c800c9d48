package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable runes, matched case-insensitively by Resolve
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionForward,
			tcell.KeyDown:   ActionBackward,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlR:  ActionRestart,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBackward,
			'a': ActionLeft,
			'd': ActionRight,
			'r': ActionRestart,
			'p': ActionPause,
			' ': ActionPause,
			'm': ActionNextMap,
			'n': ActionToggleSound,
			'q': ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Resolve returns the action bound to a key event
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		// Caps lock or shift should not change driving keys
		if r >= 'A' && r <= 'Z' {
			return kt.Runes[r+('a'-'A')]
		}
		return ActionNone
	}
	return kt.SpecialKeys[ev.Key()]
}
