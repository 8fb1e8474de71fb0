// SPDX-License-Identifier: Unlicense OR MIT

package tooltip

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
)

// Metrics are the fixed dimensions of a tooltip.
type Metrics struct {
	// Margin separates the text from the outline, and the arrow tip
	// from the anchor.
	Margin       unit.Dp
	ArrowSize    unit.Dp
	CornerRadius unit.Dp
}

// Geometry is Metrics converted to pixels.
type Geometry struct {
	Margin       float32
	ArrowSize    float32
	CornerRadius float32
}

// Rect is a rectangle with floating point coordinates.
type Rect struct {
	Min, Max f32.Point
}

// SegmentKind distinguishes outline segments.
type SegmentKind uint8

const (
	// Line is a straight segment.
	Line SegmentKind = iota
	// Arc is a circular arc.
	Arc
)

// Segment is a piece of a tooltip outline. It starts where the previous
// segment ends.
type Segment struct {
	Kind SegmentKind
	// To is the end point.
	To f32.Point
	// Center, Radius, Start and Sweep describe Arc segments. Angles are
	// in radians, measured in the y-down coordinate system, and a
	// positive sweep turns clockwise on screen.
	Center f32.Point
	Radius float32
	Start  float32
	Sweep  float32
}

// DefaultMetrics are the dimensions used when a Presenter has none.
var DefaultMetrics = Metrics{
	Margin:       5,
	ArrowSize:    5,
	CornerRadius: 5,
}

// Geometry converts m to pixels.
func (m Metrics) Geometry(c unit.Metric) Geometry {
	px := c.PxPerDp
	if px == 0 {
		px = 1
	}
	return Geometry{
		Margin:       px * float32(m.Margin),
		ArrowSize:    px * float32(m.ArrowSize),
		CornerRadius: px * float32(m.CornerRadius),
	}
}

// RectFrom converts r.
func RectFrom(r image.Rectangle) Rect {
	return Rect{
		Min: f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
		Max: f32.Pt(float32(r.Max.X), float32(r.Max.Y)),
	}
}

// Dx returns the width of r.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height of r.
func (r Rect) Size() f32.Point {
	return f32.Pt(r.Dx(), r.Dy())
}

// FrameFor computes the frame of a tooltip holding text of the given
// size above anchor. The arrow tip is horizontally centered on the
// anchor, 2*Margin above it.
func FrameFor(anchor Rect, text f32.Point, g Geometry) Rect {
	m, a := g.Margin, g.ArrowSize
	mid := (anchor.Min.X + anchor.Max.X) / 2
	base := anchor.Min.Y - 2*m
	origin := f32.Pt(mid-text.X/2-2*m, base-text.Y-2*m-a)
	return Rect{
		Min: origin,
		Max: origin.Add(f32.Pt(text.X+4*m, text.Y+2*m+a)),
	}
}

// Outline traces the outline of a tooltip of the given size in its own
// coordinates: a rounded rectangle with an arrow centered on its bottom
// edge. The outline starts and ends at the arrow tip.
func Outline(size f32.Point, arrow, radius float32) (start f32.Point, segs []Segment) {
	w, h := size.X, size.Y
	mid := w / 2
	body := h - arrow
	line := func(x, y float32) {
		segs = append(segs, Segment{Kind: Line, To: f32.Pt(x, y)})
	}
	corner := func(cx, cy, start float32) {
		end := start + math.Pi/2
		segs = append(segs, Segment{
			Kind:   Arc,
			To:     f32.Pt(cx+radius*cos(end), cy+radius*sin(end)),
			Center: f32.Pt(cx, cy),
			Radius: radius,
			Start:  start,
			Sweep:  math.Pi / 2,
		})
	}
	start = f32.Pt(mid, h)
	line(mid-arrow, body)
	line(radius, body)
	corner(radius, body-radius, math.Pi/2)
	line(0, radius)
	corner(radius, radius, math.Pi)
	line(w-radius, 0)
	corner(w-radius, radius, 3*math.Pi/2)
	line(w, body-radius)
	corner(w-radius, body-radius, 0)
	line(mid+arrow, body)
	line(mid, h)
	return start, segs
}

// Path builds a closed clip path from an outline. Arcs are approximated
// with cubic Béziers.
func Path(ops *op.Ops, start f32.Point, segs []Segment) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(start)
	for _, s := range segs {
		switch s.Kind {
		case Line:
			p.LineTo(s.To)
		case Arc:
			from := f32.Pt(s.Center.X+s.Radius*cos(s.Start), s.Center.Y+s.Radius*sin(s.Start))
			k := 4.0 / 3.0 * s.Radius * float32(math.Tan(float64(s.Sweep)/4))
			end := s.Start + s.Sweep
			c0 := from.Add(f32.Pt(-sin(s.Start), cos(s.Start)).Mul(k))
			c1 := s.To.Sub(f32.Pt(-sin(end), cos(end)).Mul(k))
			p.CubeTo(c0, c1, s.To)
		}
	}
	p.Close()
	return p.End()
}

func cos(a float32) float32 {
	return float32(math.Cos(float64(a)))
}

func sin(a float32) float32 {
	return float32(math.Sin(float64(a)))
}
