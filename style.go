// SPDX-License-Identifier: Unlicense OR MIT

package recordbutton

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/x/recordbutton/internal/f32color"
	"gioui.org/x/recordbutton/tooltip"
)

// State is a visual state of the button.
type State uint8

const (
	// Normal is the resting state.
	Normal State = iota
	// Highlighted is the state of a button under a pointer.
	Highlighted
	// Disabled is the state of a button that ignores presses.
	Disabled
	// Selected is the state of a selected button.
	Selected
)

// ButtonStyle draws a Button as a ring around a filled circle.
type ButtonStyle struct {
	Button *Button
	// Size is the diameter of the button, within the constraints.
	Size         unit.Dp
	RingWidth    unit.Dp
	RingColor    color.NRGBA
	CircleMargin unit.Dp
	CircleColor  color.NRGBA
	// Icon is drawn in the center of the circle, if set.
	Icon      *widget.Icon
	IconColor color.NRGBA
	Tooltip   tooltip.Style
}

var (
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	red   = color.NRGBA{R: 0xFF, A: 0xFF}
)

// RecordButton returns the default style of a Button.
func RecordButton(th *material.Theme, b *Button) ButtonStyle {
	return ButtonStyle{
		Button:      b,
		Size:        75,
		RingWidth:   4,
		RingColor:   white,
		CircleColor: red,
		IconColor:   white,
		Tooltip: tooltip.Style{
			Text:       "Tap and Hold",
			Font:       font.Font{Typeface: th.Face},
			TextSize:   12,
			Color:      color.NRGBA{A: 0xCC},
			Background: white,
			Shaper:     th.Shaper,
		},
	}
}

// ColorForState returns c as drawn in state s.
func ColorForState(c color.NRGBA, s State) (color.NRGBA, bool) {
	switch s {
	case Normal:
		return c, true
	case Highlighted, Disabled, Selected:
		return f32color.Faded(c), true
	default:
		return color.NRGBA{}, false
	}
}

func (s ButtonStyle) Layout(gtx layout.Context) layout.Dimensions {
	d := gtx.Dp(s.Size)
	sz := gtx.Constraints.Constrain(image.Pt(d, d))
	if sz.X < sz.Y {
		sz.Y = sz.X
	} else {
		sz.X = sz.Y
	}
	return s.Button.Layout(gtx, s.Tooltip, func(gtx layout.Context) layout.Dimensions {
		s.draw(gtx, sz)
		return layout.Dimensions{Size: sz}
	})
}

// Colors returns the ring and circle colors for the button's current
// state.
func (s ButtonStyle) Colors(gtx layout.Context) (ring, circle color.NRGBA) {
	st := Normal
	if !s.Button.Enabled() || !gtx.Enabled() {
		st = Disabled
	}
	ring, _ = ColorForState(s.RingColor, st)
	circle, _ = ColorForState(s.CircleColor, st)
	if s.Button.Pressed() {
		circle = f32color.Darker(circle)
	}
	return ring, circle
}

func (s ButtonStyle) draw(gtx layout.Context, sz image.Point) {
	ring, circle := s.Colors(gtx)
	rw := gtx.Dp(s.RingWidth)
	outer := image.Rect(rw/2, rw/2, sz.X-rw/2, sz.Y-rw/2)
	paint.FillShape(gtx.Ops, ring, clip.Stroke{
		Path:  clip.Ellipse(outer).Path(gtx.Ops),
		Width: float32(rw),
	}.Op())

	in := rw + gtx.Dp(s.CircleMargin)
	inner := image.Rect(in, in, sz.X-in, sz.Y-in)
	if inner.Empty() {
		return
	}
	paint.FillShape(gtx.Ops, circle, clip.Ellipse(inner).Op(gtx.Ops))

	if s.Icon == nil {
		return
	}
	isz := inner.Dx() / 2
	off := inner.Min.Add(image.Pt((inner.Dx()-isz)/2, (inner.Dy()-isz)/2))
	defer op.Offset(off).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(isz, isz))
	s.Icon.Layout(gtx, s.IconColor)
}
