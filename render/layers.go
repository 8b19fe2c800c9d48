package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/race"
)

// TrackLayer blits the cached raster
type TrackLayer struct {
	raster *Raster
}

func (l *TrackLayer) Render(ctx Context, c *Canvas) {
	if !l.raster.matches(ctx.Map.ID, ctx.View) {
		l.raster = BuildRaster(ctx.Map, ctx.Geometry, ctx.View)
	}
	grass := c.Style(RGBGrass, RGBGrass)
	road := c.Style(RGBRoad.Scale(0.8), RGBRoad)
	wall := c.Style(RGBWall, RGBWall.Scale(0.6))
	line := c.Style(RGBStartLine, RGBRoad)

	for cy := 0; cy < l.raster.Height; cy++ {
		for cx := 0; cx < l.raster.Width; cx++ {
			x, y := ctx.View.X+cx, ctx.View.Y+cy
			switch l.raster.At(cx, cy) {
			case SurfaceRoad:
				c.Set(x, y, parameter.GlyphRoad, road)
			case SurfaceWall:
				c.Set(x, y, parameter.GlyphWall, wall)
			case SurfaceStartLine:
				c.Set(x, y, parameter.GlyphStartLine, line)
			default:
				c.Set(x, y, parameter.GlyphGrass, grass)
			}
		}
	}
}

// Invalidate forces a raster rebuild on the next frame
func (l *TrackLayer) Invalidate() { l.raster = nil }

// CarLayer draws the car arrow, tinted while drifting
type CarLayer struct{}

func (CarLayer) Render(ctx Context, c *Canvas) {
	p := mgl64.Vec2{ctx.Snap.Position.X(), ctx.Snap.Position.Z()}
	x, y, ok := ctx.View.Project(p)
	if !ok {
		return
	}
	fg := RGBCar
	if ctx.Snap.Drifting {
		fg = RGBCar.Blend(RGBDrift, 0.7)
	}
	c.Set(x, y, CarGlyph(ctx.Snap.Heading), c.Style(fg, RGBRoad))
}

// HUDLayer draws the right-hand panel
type HUDLayer struct{}

func (HUDLayer) Render(ctx Context, c *Canvas) {
	x, w := ctx.HUDX+1, ctx.HUDWidth-1
	if w <= 0 {
		return
	}
	bg := RGBBlack
	text := c.Style(RGBText, bg)
	dim := c.Style(RGBDim, bg)
	accent := c.Style(RGBAccent, bg)
	c.Fill(ctx.HUDX, 0, ctx.HUDWidth, ctx.Height, ' ', text)

	snap := ctx.Snap
	lines := []struct {
		s     string
		style tcell.Style
	}{
		{ctx.Map.Name, accent},
		{"", text},
		{fmt.Sprintf("Lap    %d / %d", snap.Lap, snap.TotalLaps), text},
		{fmt.Sprintf("State  %s", snap.State), text},
		{fmt.Sprintf("Speed  %3d km/h", snap.SpeedKMH), text},
		{"Steer  " + SteerBar(snap.Steer, parameter.SteerBarWidth), text},
		{"", text},
		{"Time   " + race.FormatLapTime(snap.RaceTime), text},
		{"Lap    " + race.FormatLapTime(snap.CurrentLap), text},
		{"Last   " + lapOrDash(snap.LastLap(), len(snap.LapTimes)), dim},
		{"Best   " + lapOrDash(snap.BestLap(), len(snap.LapTimes)), dim},
	}
	y := 0
	for _, l := range lines {
		if y >= ctx.Height {
			return
		}
		c.Text(x, y, w, l.s, l.style)
		y++
	}

	y++
	if ctx.Paused {
		c.Text(x, y, w, "PAUSED", accent)
		y++
	}
	if ctx.Muted {
		c.Text(x, y, w, "muted", dim)
		y++
	}

	help := []string{"wasd/arrows drive", "r restart  p pause", "m map  n sound", "q quit"}
	for i, h := range help {
		hy := ctx.Height - len(help) + i
		if hy > y {
			c.Text(x, hy, w, h, dim)
		}
	}
}

// BannerLayer announces the finished race over the track view
type BannerLayer struct{}

func (BannerLayer) Render(ctx Context, c *Canvas) {
	if ctx.Snap.State != race.StateFinished {
		return
	}
	best := lapOrDash(ctx.Snap.BestLap(), len(ctx.Snap.LapTimes))
	msgs := []string{
		" FINISHED ",
		fmt.Sprintf(" total %s ", race.FormatLapTime(ctx.Snap.RaceTime)),
		fmt.Sprintf(" best lap %s ", best),
		" r to race again ",
	}
	style := c.Style(RGBBlack, RGBFinish)
	top := ctx.View.Y + (ctx.View.Height-len(msgs))/2
	for i, m := range msgs {
		n := utf8.RuneCountInString(m)
		left := ctx.View.X + max((ctx.View.Width-n)/2, 0)
		c.Text(left, top+i, ctx.View.Width, m, style)
	}
}

// SteerBar draws the smoothed steer input, left input moves the marker left
func SteerBar(steer float64, width int) string {
	if width < 3 {
		width = 3
	}
	center := width / 2
	pos := center - int(roundHalfAway(steer*float64(center)))
	pos = max(0, min(width-1, pos))
	buf := make([]rune, width)
	for i := range buf {
		buf[i] = '-'
	}
	buf[center] = '|'
	buf[pos] = '●'
	return string(buf)
}

func roundHalfAway(v float64) float64 {
	if v < 0 {
		return -float64(int(-v + 0.5))
	}
	return float64(int(v + 0.5))
}

func lapOrDash(t float64, n int) string {
	if n == 0 {
		return "-:--.---"
	}
	return race.FormatLapTime(t)
}
