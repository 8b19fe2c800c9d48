// Package render draws the race on a tcell screen: a top-down track view, the
// car, the HUD panel and the finish banner, each as an ordered layer.
package render

import (
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/track"
)

// Context is the frame state handed to each layer, passed by value
type Context struct {
	Snap     engine.Snapshot
	Map      *track.Map
	Geometry *track.Geometry

	Paused bool
	Muted  bool

	// Track view and HUD rectangles in screen cells
	View     Viewport
	HUDX     int
	HUDWidth int
	Height   int
}

// Layer is one pass of the frame
type Layer interface {
	Render(ctx Context, c *Canvas)
}

// Priority orders layers, lower draws first
type Priority int

const (
	PriorityTrack  Priority = 100
	PriorityCar    Priority = 200
	PriorityHUD    Priority = 300
	PriorityBanner Priority = 400
)
