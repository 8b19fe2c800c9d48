package track

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Rect is an axis-aligned box in the XZ plane, Y of the vectors holds Z
type Rect struct {
	Min, Max mgl64.Vec2
}

func (r Rect) Width() float64  { return r.Max.X() - r.Min.X() }
func (r Rect) Height() float64 { return r.Max.Y() - r.Min.Y() }

// Geometry is the derived shape of a map, built once per race
type Geometry struct {
	Samples   []mgl64.Vec2 // evenly spaced closed centerline
	Walls     []physics.Wall
	Bounds    Rect // centerline extent plus margin, for minimap projection
	StartLine [2]mgl64.Vec2
	Length    float64
}

// Build derives the sampled centerline, walls and bounds of m
func Build(m *Map) *Geometry {
	samples := SpacedPoints(m.Points, parameter.TrackSegments, parameter.CatmullRomTension)
	g := &Geometry{
		Samples: samples,
		Bounds:  Bounds(m),
		Length:  perimeter(samples),
	}
	height, thickness := m.WallDims()
	g.Walls = append(wallSegments(samples, -1, m.HalfWidth(), height, thickness),
		wallSegments(samples, 1, m.HalfWidth(), height, thickness)...)

	if len(samples) > 1 {
		dir := samples[1].Sub(samples[0]).Normalize()
		right := mgl64.Vec2{-dir.Y(), dir.X()}
		g.StartLine = [2]mgl64.Vec2{
			samples[0].Sub(right.Mul(m.HalfWidth())),
			samples[0].Add(right.Mul(m.HalfWidth())),
		}
	}
	return g
}

// OnRoad reports whether (x, z) is within the road half-width of the centerline
func (g *Geometry) OnRoad(p mgl64.Vec2, halfWidth float64) bool {
	return vmath.DistToPolyline(p, g.Samples) <= halfWidth
}

// Bounds is the centerline extent grown by road width plus a fixed margin
func Bounds(m *Map) Rect {
	r := Rect{
		Min: mgl64.Vec2{math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec2{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range m.Points {
		r.Min[0] = math.Min(r.Min[0], p.X())
		r.Min[1] = math.Min(r.Min[1], p.Y())
		r.Max[0] = math.Max(r.Max[0], p.X())
		r.Max[1] = math.Max(r.Max[1], p.Y())
	}
	margin := m.RoadWidth + parameter.MinimapBoundsMargin
	r.Min = r.Min.Sub(mgl64.Vec2{margin, margin})
	r.Max = r.Max.Add(mgl64.Vec2{margin, margin})
	return r
}

// CatmullRom evaluates the closed spline through pts at u in [0, 1)
func CatmullRom(pts []mgl64.Vec2, u, tension float64) mgl64.Vec2 {
	n := len(pts)
	p := float64(n) * (u - math.Floor(u))
	i := int(math.Floor(p))
	w := p - float64(i)

	p0 := pts[(i-1+n)%n]
	p1 := pts[i%n]
	p2 := pts[(i+1)%n]
	p3 := pts[(i+2)%n]

	return mgl64.Vec2{
		hermite(p0.X(), p1.X(), p2.X(), p3.X(), w, tension),
		hermite(p0.Y(), p1.Y(), p2.Y(), p3.Y(), w, tension),
	}
}

func hermite(x0, x1, x2, x3, w, tension float64) float64 {
	t0 := tension * (x2 - x0)
	t1 := tension * (x3 - x1)
	c2 := -3*x1 + 3*x2 - 2*t0 - t1
	c3 := 2*x1 - 2*x2 + t0 + t1
	return x1 + t0*w + c2*w*w + c3*w*w*w
}

// SpacedPoints resamples the closed spline into count points evenly spaced by
// arc length, the closing duplicate of the first point is omitted
func SpacedPoints(pts []mgl64.Vec2, count int, tension float64) []mgl64.Vec2 {
	if len(pts) < 2 || count < 1 {
		return append([]mgl64.Vec2(nil), pts...)
	}

	// Dense arc-length table
	dense := count * 4
	lengths := make([]float64, dense+1)
	prev := CatmullRom(pts, 0, tension)
	for i := 1; i <= dense; i++ {
		cur := CatmullRom(pts, float64(i)/float64(dense), tension)
		lengths[i] = lengths[i-1] + cur.Sub(prev).Len()
		prev = cur
	}
	total := lengths[dense]

	out := make([]mgl64.Vec2, count)
	for k := range out {
		target := total * float64(k) / float64(count)
		j := sort.SearchFloat64s(lengths, target)
		if j == 0 {
			out[k] = CatmullRom(pts, 0, tension)
			continue
		}
		seg := lengths[j] - lengths[j-1]
		frac := 0.0
		if seg > 0 {
			frac = (target - lengths[j-1]) / seg
		}
		u := (float64(j-1) + frac) / float64(dense)
		out[k] = CatmullRom(pts, u, tension)
	}
	return out
}

func wallSegments(samples []mgl64.Vec2, side, halfWidth, height, thickness float64) []physics.Wall {
	n := len(samples)
	step := parameter.WallSampleStep
	walls := make([]physics.Wall, 0, n/step+1)
	for i := 0; i < n; i += step {
		curr := samples[i]
		next := samples[(i+step)%n]
		d := next.Sub(curr)
		l := d.Len()
		if l == 0 {
			continue
		}
		dir := d.Mul(1 / l)
		right := mgl64.Vec2{-dir.Y(), dir.X()}
		mid := curr.Add(next).Mul(0.5).Add(right.Mul(side * (halfWidth + thickness/2 + parameter.WallGap)))
		half := dir.Mul(l/2 + 0.5)
		walls = append(walls, physics.Wall{
			A:             mid.Sub(half),
			B:             mid.Add(half),
			HalfThickness: thickness / 2,
			Height:        height,
		})
	}
	return walls
}

func perimeter(pts []mgl64.Vec2) float64 {
	total := 0.0
	for i := range pts {
		total += pts[(i+1)%len(pts)].Sub(pts[i]).Len()
	}
	return total
}
