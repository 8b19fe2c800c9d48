package parameter

import "time"

// Terminals report key presses only, hold state is inferred from timing
const (
	// KeyHoldInitial keeps a key held after a single press, covering the
	// typical auto-repeat delay
	KeyHoldInitial = 550 * time.Millisecond

	// KeyHoldRepeat keeps a key held between auto-repeat events
	KeyHoldRepeat = 150 * time.Millisecond
)
