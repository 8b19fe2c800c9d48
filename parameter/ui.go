package parameter

// HUD
const (
	// SpeedToKMH converts world units per second to displayed km/h
	SpeedToKMH = 2.0

	// HUDWidth is the right-hand panel width in cells
	HUDWidth = 24

	// SteerBarWidth is the cell width of the steer indicator, odd to have a center
	SteerBarWidth = 15

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

// Glyphs
const (
	GlyphRoad      = '░'
	GlyphWall      = '▓'
	GlyphStartLine = '▚'
	GlyphGrass     = ' '
)

// CarGlyphs indexed by heading octant, 0 = +X on screen (east), counter-clockwise
var CarGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
