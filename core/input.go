package core

// Input is the per-tick directional key snapshot, last observed state only
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// SteerTarget maps the left/right keys to +1, -1 or 0, both held cancel out
func (in Input) SteerTarget() float64 {
	switch {
	case in.Left && !in.Right:
		return 1
	case in.Right && !in.Left:
		return -1
	}
	return 0
}

// Any reports whether any direction is held
func (in Input) Any() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}
