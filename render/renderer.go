package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
)

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Renderer coordinates the layer pipeline on a tcell screen
type Renderer struct {
	canvas   *Canvas
	layers   []layerEntry
	regCount int
	track    *TrackLayer
}

// NewRenderer registers the standard layers
func NewRenderer(screen tcell.Screen, color bool) *Renderer {
	r := &Renderer{
		canvas: &Canvas{screen: screen, color: color},
		track:  &TrackLayer{},
	}
	r.Register(r.track, PriorityTrack)
	r.Register(CarLayer{}, PriorityCar)
	r.Register(HUDLayer{}, PriorityHUD)
	r.Register(BannerLayer{}, PriorityBanner)
	return r
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (r *Renderer) Register(l Layer, priority Priority) {
	entry := layerEntry{layer: l, priority: priority, index: r.regCount}
	r.regCount++

	pos := len(r.layers)
	for i, e := range r.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}
	r.layers = append(r.layers, layerEntry{})
	copy(r.layers[pos+1:], r.layers[pos:])
	r.layers[pos] = entry
}

// Invalidate drops the cached track raster
func (r *Renderer) Invalidate() {
	r.track.Invalidate()
}

// Frame lays out the screen for the current size
func (r *Renderer) Frame(snap engine.Snapshot, m *track.Map, g *track.Geometry, paused, muted bool) Context {
	w, h := r.canvas.screen.Size()
	hudW := min(parameter.HUDWidth, w/2)
	fieldW := w - hudW
	return Context{
		Snap:     snap,
		Map:      m,
		Geometry: g,
		Paused:   paused,
		Muted:    muted,
		View:     NewViewport(g.Bounds, 0, 0, fieldW, h),
		HUDX:     fieldW,
		HUDWidth: hudW,
		Height:   h,
	}
}

// Draw renders all layers and shows the frame
func (r *Renderer) Draw(ctx Context) {
	for _, e := range r.layers {
		e.layer.Render(ctx, r.canvas)
	}
	r.canvas.screen.Show()
}
