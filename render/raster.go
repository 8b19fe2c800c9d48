package render

import (
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Surface is the static content of a track cell
type Surface uint8

const (
	SurfaceGrass Surface = iota
	SurfaceRoad
	SurfaceWall
	SurfaceStartLine
)

// Raster is the track rendered once per map and viewport size
type Raster struct {
	mapID  string
	view   Viewport
	Width  int
	Height int
	cells  []Surface
}

// BuildRaster classifies every viewport cell against the sampled centerline
func BuildRaster(m *track.Map, g *track.Geometry, view Viewport) *Raster {
	r := &Raster{
		mapID:  m.ID,
		view:   view,
		Width:  view.Width,
		Height: view.Height,
		cells:  make([]Surface, max(view.Width*view.Height, 0)),
	}
	half := m.HalfWidth()
	_, thick := m.WallDims()
	// Walls and the start line stay at least a cell thick when zoomed out
	wallOuter := half + max(thick+parameter.WallGap, view.Scale())
	lineReach := view.Scale() * parameter.CellAspect * 0.6

	for cy := 0; cy < view.Height; cy++ {
		for cx := 0; cx < view.Width; cx++ {
			p := view.Center(cx, cy)
			d := vmath.DistToPolyline(p, g.Samples)
			s := SurfaceGrass
			switch {
			case d <= half:
				s = SurfaceRoad
				q, _ := vmath.ClosestOnSegment(p, g.StartLine[0], g.StartLine[1])
				if q.Sub(p).Len() <= lineReach {
					s = SurfaceStartLine
				}
			case d <= wallOuter:
				s = SurfaceWall
			}
			r.cells[cy*view.Width+cx] = s
		}
	}
	return r
}

// At returns the surface of a viewport-relative cell
func (r *Raster) At(cx, cy int) Surface {
	if cx < 0 || cy < 0 || cx >= r.Width || cy >= r.Height {
		return SurfaceGrass
	}
	return r.cells[cy*r.Width+cx]
}

func (r *Raster) matches(mapID string, view Viewport) bool {
	return r != nil && r.mapID == mapID && r.view == view
}
