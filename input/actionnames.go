package input

import "strings"

// Action is what a key does in the game
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionRestart
	ActionPause
	ActionNextMap
	ActionToggleSound
	ActionQuit
)

// actionRegistry maps canonical action names used in keymap files
var actionRegistry = map[string]Action{
	"none":         ActionNone, // unbind sentinel
	"forward":      ActionForward,
	"backward":     ActionBackward,
	"left":         ActionLeft,
	"right":        ActionRight,
	"restart":      ActionRestart,
	"pause":        ActionPause,
	"next_map":     ActionNextMap,
	"toggle_sound": ActionToggleSound,
	"quit":         ActionQuit,
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// IsDirectional reports whether the action is held rather than triggered
func (a Action) IsDirectional() bool {
	return a >= ActionForward && a <= ActionRight
}

// ActionByName resolves a keymap action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}
