package track

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Side classifies a position against the start/finish line
type Side uint8

const (
	SideNone Side = iota // not observed yet
	SideA                // before the line in race direction
	SideB                // after the line
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "a"
	case SideB:
		return "b"
	}
	return "-"
}

// Context accumulates the extent covered while on side "a"
// A zero Context is empty: no extremum has been observed
type Context struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
	Samples    int
}

// Empty reports whether no position has been observed
func (c Context) Empty() bool { return c.Samples == 0 }

// Observe folds a position into the running extrema
func (c *Context) Observe(p mgl64.Vec3) {
	x, z := p.X(), p.Z()
	if c.Samples == 0 {
		c.MinX, c.MaxX, c.MinZ, c.MaxZ = x, x, z, z
	} else {
		c.MinX = min(c.MinX, x)
		c.MaxX = max(c.MaxX, x)
		c.MinZ = min(c.MinZ, z)
		c.MaxZ = max(c.MaxZ, z)
	}
	c.Samples++
}

// Contains reports whether the point lies inside the covered extent box
func (c *Context) Contains(p mgl64.Vec2) bool {
	if c.Empty() {
		return false
	}
	return p.X() >= c.MinX && p.X() <= c.MaxX && p.Y() >= c.MinZ && p.Y() <= c.MaxZ
}

// RuleKind enumerates the closed set of lap rule shapes
type RuleKind uint8

const (
	RuleLine RuleKind = iota
	RuleCheckpoint
)

func (k RuleKind) String() string {
	switch k {
	case RuleLine:
		return "line"
	case RuleCheckpoint:
		return "checkpoint"
	}
	return fmt.Sprintf("RuleKind(%d)", uint8(k))
}

// LapRule decides which side of the line a position is on and whether an
// a->b crossing completes a lap. Implementations are LineRule and
// CheckpointRule only.
type LapRule interface {
	Kind() RuleKind
	SideOf(p mgl64.Vec3) Side
	ValidCrossing(ctx Context) bool
	lapRule()
}

// Axis selects the world coordinate a line is perpendicular to
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

// Line is an infinite start/finish line perpendicular to Axis at Position
type Line struct {
	Axis     Axis
	Position float64
	ABelow   bool // side a is coordinate < Position, otherwise coordinate >= Position
}

// SideOf classifies p, a position exactly on the line belongs to the >= half
func (l Line) SideOf(p mgl64.Vec3) Side {
	v := p.X()
	if l.Axis == AxisZ {
		v = p.Z()
	}
	below := v < l.Position
	if below == l.ABelow {
		return SideA
	}
	return SideB
}

// Extremum names one accumulated field of Context
type Extremum uint8

const (
	ExtremumMinX Extremum = iota
	ExtremumMaxX
	ExtremumMinZ
	ExtremumMaxZ
)

var extremumNames = map[Extremum]string{
	ExtremumMinX: "min_x",
	ExtremumMaxX: "max_x",
	ExtremumMinZ: "min_z",
	ExtremumMaxZ: "max_z",
}

func (e Extremum) String() string {
	if n, ok := extremumNames[e]; ok {
		return n
	}
	return fmt.Sprintf("Extremum(%d)", uint8(e))
}

// ParseExtremum maps "min_x", "max_x", "min_z", "max_z" to an Extremum
func ParseExtremum(s string) (Extremum, error) {
	for e, n := range extremumNames {
		if n == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown extremum %q", s)
}

// Bound requires an extremum to pass a threshold: minimums strictly below,
// maximums strictly above
type Bound struct {
	Extremum  Extremum
	Threshold float64
}

// Satisfied evaluates the bound, an empty context never satisfies it
func (b Bound) Satisfied(ctx Context) bool {
	if ctx.Empty() {
		return false
	}
	switch b.Extremum {
	case ExtremumMinX:
		return ctx.MinX < b.Threshold
	case ExtremumMaxX:
		return ctx.MaxX > b.Threshold
	case ExtremumMinZ:
		return ctx.MinZ < b.Threshold
	case ExtremumMaxZ:
		return ctx.MaxZ > b.Threshold
	}
	return false
}

// LineRule is a single line plus one "went far enough" bound
type LineRule struct {
	Line  Line
	Bound Bound
}

func (r LineRule) Kind() RuleKind                 { return RuleLine }
func (r LineRule) SideOf(p mgl64.Vec3) Side       { return r.Line.SideOf(p) }
func (r LineRule) ValidCrossing(ctx Context) bool { return r.Bound.Satisfied(ctx) }
func (LineRule) lapRule()                         {}

// CheckpointRule is a line plus checkpoints that must all lie inside the
// extent covered on side "a"
type CheckpointRule struct {
	Line        Line
	Checkpoints []mgl64.Vec2 // (x, z)
}

func (r CheckpointRule) Kind() RuleKind           { return RuleCheckpoint }
func (r CheckpointRule) SideOf(p mgl64.Vec3) Side { return r.Line.SideOf(p) }

func (r CheckpointRule) ValidCrossing(ctx Context) bool {
	if ctx.Empty() {
		return false
	}
	for _, cp := range r.Checkpoints {
		if !ctx.Contains(cp) {
			return false
		}
	}
	return true
}

func (CheckpointRule) lapRule() {}
