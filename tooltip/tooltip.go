// SPDX-License-Identifier: Unlicense OR MIT

/*
Package tooltip implements a transient tooltip bubble pointing at an
anchor rectangle.

A Tooltip is created by a Presenter, attached to an overlay.Overlay and
animated in with a spring scale. When the animation has played forward
and back again the tooltip detaches itself; nothing else removes it.
*/
package tooltip

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"gioui.org/x/recordbutton/internal/spring"
	"gioui.org/x/recordbutton/overlay"
)

// Spring parameters of the enter animation.
const (
	enterDamping  = 15
	enterVelocity = 10
)

// maxTextSize bounds the measured text.
const maxTextSize = 1 << 16

// Style is the presentation of a tooltip.
type Style struct {
	Text       string
	Font       font.Font
	TextSize   unit.Sp
	Color      color.NRGBA
	Background color.NRGBA
	// Shaper measures and shapes the text. A nil Shaper means a
	// shaper for the Go fonts.
	Shaper *text.Shaper
}

// Tooltip is a tooltip bubble. Its frame is computed once, when the
// tooltip is created.
type Tooltip struct {
	style    Style
	geom     Geometry
	frame    Rect
	textSize image.Point
	anim     spring.Animation
	parent   *overlay.Overlay
}

// Presenter shows a tooltip for an anchor unless one is already visible.
type Presenter struct {
	Style Style
	// Metrics of the tooltip. The zero value means DefaultMetrics.
	Metrics Metrics
	// Allow is consulted before a tooltip is created. A nil Allow
	// permits every tooltip.
	Allow func() bool
	// Shown is called after a tooltip is attached.
	Shown func(t *Tooltip)
}

// MaybeShow attaches a new tooltip for anchor to o and starts its enter
// animation. It returns nil when o already holds a tooltip or Allow
// denies it.
func (p *Presenter) MaybeShow(gtx layout.Context, o *overlay.Overlay, anchor image.Rectangle) *Tooltip {
	if Visible(o) {
		return nil
	}
	if p.Allow != nil && !p.Allow() {
		return nil
	}
	m := p.Metrics
	if m == (Metrics{}) {
		m = DefaultMetrics
	}
	t := New(gtx, p.Style, m, anchor)
	t.Show(gtx, o)
	if p.Shown != nil {
		p.Shown(t)
	}
	return t
}

// Visible reports whether o holds a tooltip.
func Visible(o *overlay.Overlay) bool {
	_, ok := overlay.Find[*Tooltip](o)
	return ok
}

// New creates a tooltip for anchor, measuring its text with the style's
// shaper.
func New(gtx layout.Context, s Style, m Metrics, anchor image.Rectangle) *Tooltip {
	if s.Shaper == nil {
		s.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	}
	t := &Tooltip{
		style: s,
		geom:  m.Geometry(gtx.Metric),
		anim: spring.Animation{
			Spring:      spring.Default(enterDamping, enterVelocity),
			From:        0,
			To:          1,
			AutoReverse: true,
		},
	}
	t.textSize = t.measure(gtx)
	sz := f32.Pt(float32(t.textSize.X), float32(t.textSize.Y))
	t.frame = FrameFor(RectFrom(anchor), sz, t.geom)
	return t
}

// Show attaches t to o and starts the enter animation.
func (t *Tooltip) Show(gtx layout.Context, o *overlay.Overlay) {
	t.parent = o
	o.Attach(t)
	t.anim.Start(gtx.Now)
	gtx.Execute(op.InvalidateCmd{})
}

// Frame returns the tooltip bounds in the anchor's coordinate system.
func (t *Tooltip) Frame() Rect {
	return t.frame
}

// Text returns the tooltip text.
func (t *Tooltip) Text() string {
	return t.style.Text
}

// Attached reports whether the tooltip is still in its overlay.
func (t *Tooltip) Attached() bool {
	return t.parent != nil
}

// Layout draws the tooltip at its current animation scale. It detaches
// the tooltip once the animation completes.
func (t *Tooltip) Layout(gtx layout.Context) layout.Dimensions {
	scale, done := t.anim.Value(gtx.Now)
	if done {
		t.detach()
		return layout.Dimensions{}
	}
	gtx.Execute(op.InvalidateCmd{})

	size := t.frame.Size()
	center := size.Mul(0.5)
	tr := f32.Affine2D{}.Scale(center, f32.Pt(scale, scale)).Offset(t.frame.Min)
	defer op.Affine(tr).Push(gtx.Ops).Pop()

	start, segs := Outline(size, t.geom.ArrowSize, t.geom.CornerRadius)
	paint.FillShape(gtx.Ops, t.style.Background, clip.Outline{Path: Path(gtx.Ops, start, segs)}.Op())

	m := t.geom.Margin
	off := image.Pt(int(2*m+.5), int(m+.5))
	stack := op.Offset(off).Push(gtx.Ops)
	gtx.Constraints = layout.Exact(t.textSize)
	t.label().Layout(gtx)
	stack.Pop()

	return layout.Dimensions{Size: image.Pt(int(size.X+.5), int(size.Y+.5))}
}

func (t *Tooltip) detach() {
	if t.parent == nil {
		return
	}
	t.parent.Detach(t)
	t.parent = nil
}

func (t *Tooltip) label() material.LabelStyle {
	return material.LabelStyle{
		Text:      t.style.Text,
		Font:      t.style.Font,
		TextSize:  t.style.TextSize,
		Color:     t.style.Color,
		Alignment: text.Middle,
		Shaper:    t.style.Shaper,
	}
}

func (t *Tooltip) measure(gtx layout.Context) image.Point {
	gtx.Constraints = layout.Constraints{Max: image.Pt(maxTextSize, maxTextSize)}
	m := op.Record(gtx.Ops)
	dims := t.label().Layout(gtx)
	m.Stop()
	return dims.Size
}
