package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
)

// Viewport maps the world XZ plane onto a cell rectangle, top-down with +X
// to the right and +Z down, preserving aspect with terminal cell shape
type Viewport struct {
	X, Y          int // top-left cell
	Width, Height int // cells

	origin mgl64.Vec2 // world point at the top-left cell corner
	scale  float64    // world units per cell column
}

// NewViewport fits bounds into the cell rectangle, centered
func NewViewport(bounds track.Rect, x, y, width, height int) Viewport {
	v := Viewport{X: x, Y: y, Width: width, Height: height}
	if width <= 0 || height <= 0 {
		v.scale = 1
		return v
	}
	rows := float64(height) * parameter.CellAspect
	v.scale = math.Max(bounds.Width()/float64(width), bounds.Height()/rows)
	if v.scale <= 0 {
		v.scale = 1
	}
	// Center the unused span
	usedW := bounds.Width() / v.scale
	usedH := bounds.Height() / v.scale / parameter.CellAspect
	v.origin = mgl64.Vec2{
		bounds.Min.X() - (float64(width)-usedW)/2*v.scale,
		bounds.Min.Y() - (float64(height)-usedH)/2*v.scale*parameter.CellAspect,
	}
	return v
}

// Scale returns world units per cell column
func (v Viewport) Scale() float64 { return v.scale }

// Project returns the cell holding world point (x, z)
func (v Viewport) Project(p mgl64.Vec2) (cx, cy int, ok bool) {
	fx := (p.X() - v.origin.X()) / v.scale
	fy := (p.Y() - v.origin.Y()) / (v.scale * parameter.CellAspect)
	cx, cy = int(math.Floor(fx)), int(math.Floor(fy))
	ok = cx >= 0 && cx < v.Width && cy >= 0 && cy < v.Height
	return cx + v.X, cy + v.Y, ok
}

// Center returns the world point at the center of a viewport-relative cell
func (v Viewport) Center(cx, cy int) mgl64.Vec2 {
	return mgl64.Vec2{
		v.origin.X() + (float64(cx)+0.5)*v.scale,
		v.origin.Y() + (float64(cy)+0.5)*v.scale*parameter.CellAspect,
	}
}

// CarGlyph picks an arrow for a heading, 0 along +Z which points down on screen
func CarGlyph(heading float64) rune {
	// Screen angle, counter-clockwise from east with y up
	dx, dy := math.Sin(heading), -math.Cos(heading)
	a := math.Atan2(dy, dx)
	oct := int(math.Round(a/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return parameter.CarGlyphs[oct]
}
