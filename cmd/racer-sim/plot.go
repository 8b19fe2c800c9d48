package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lixenwraith/vi-racer/track"
)

// SavePlot draws the centerline, start line and driven trace to a PNG
func SavePlot(path string, m *track.Map, g *track.Geometry, samples []Sample) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - %d samples", m.Name, len(samples))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "z"

	center := make(plotter.XYs, 0, len(g.Samples)+1)
	for _, s := range g.Samples {
		center = append(center, plotter.XY{X: s.X(), Y: s.Y()})
	}
	if len(g.Samples) > 0 {
		center = append(center, center[0])
	}
	centerLine, err := plotter.NewLine(center)
	if err != nil {
		return fmt.Errorf("centerline: %w", err)
	}
	centerLine.Width = vg.Points(1)
	centerLine.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	centerLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(centerLine)
	p.Legend.Add("centerline", centerLine)

	startLine, err := plotter.NewLine(xys(g.StartLine[:]))
	if err != nil {
		return fmt.Errorf("start line: %w", err)
	}
	startLine.Width = vg.Points(2)
	startLine.Color = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	p.Add(startLine)

	if len(samples) > 0 {
		trace := make(plotter.XYs, len(samples))
		for i, s := range samples {
			trace[i] = plotter.XY{X: s.X, Y: s.Z}
		}
		traceLine, err := plotter.NewLine(trace)
		if err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		traceLine.Width = vg.Points(1)
		traceLine.Color = color.RGBA{R: 220, G: 60, B: 40, A: 255}
		p.Add(traceLine)
		p.Legend.Add("trace", traceLine)
	}

	// Equal axis scale
	b := g.Bounds
	p.X.Min, p.X.Max = b.Min.X(), b.Max.X()
	p.Y.Min, p.Y.Max = b.Min.Y(), b.Max.Y()
	w := 8 * vg.Inch
	h := vg.Length(float64(w) * b.Height() / b.Width())

	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

func xys(pts []mgl64.Vec2) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, v := range pts {
		out[i] = plotter.XY{X: v.X(), Y: v.Y()}
	}
	return out
}
