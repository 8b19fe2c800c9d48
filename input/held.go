package input

import (
	"time"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/parameter"
)

// Held turns key press events into a held-key snapshot
// Terminals report presses and auto-repeats but no releases, so a key stays
// held for a window after each press: long after the first press to bridge
// the auto-repeat delay, short once repeats arrive
type Held struct {
	initial time.Duration
	repeat  time.Duration
	keys    [4]heldKey // indexed by Action - ActionForward
}

type heldKey struct {
	until     time.Time
	repeating bool
}

// NewHeld uses the default hold windows
func NewHeld() *Held {
	return &Held{initial: parameter.KeyHoldInitial, repeat: parameter.KeyHoldRepeat}
}

// Press records a directional press at now, other actions are ignored
// The opposite direction is released immediately
func (h *Held) Press(a Action, now time.Time) {
	if !a.IsDirectional() {
		return
	}
	k := &h.keys[a-ActionForward]
	if now.Before(k.until) {
		k.repeating = true
		k.until = now.Add(h.repeat)
	} else {
		k.repeating = false
		k.until = now.Add(h.initial)
	}
	h.Release(opposite(a))
}

// Release drops a directional key
func (h *Held) Release(a Action) {
	if a.IsDirectional() {
		h.keys[a-ActionForward] = heldKey{}
	}
}

// Clear drops every key
func (h *Held) Clear() {
	h.keys = [4]heldKey{}
}

// Input returns the snapshot at now
func (h *Held) Input(now time.Time) core.Input {
	return core.Input{
		Forward:  now.Before(h.keys[0].until),
		Backward: now.Before(h.keys[1].until),
		Left:     now.Before(h.keys[2].until),
		Right:    now.Before(h.keys[3].until),
	}
}

func opposite(a Action) Action {
	switch a {
	case ActionForward:
		return ActionBackward
	case ActionBackward:
		return ActionForward
	case ActionLeft:
		return ActionRight
	}
	return ActionLeft
}
