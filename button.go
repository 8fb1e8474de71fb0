// SPDX-License-Identifier: Unlicense OR MIT

package recordbutton

import (
	"image"
	"time"
	"weak"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"gioui.org/x/recordbutton/overlay"
	"gioui.org/x/recordbutton/press"
	"gioui.org/x/recordbutton/tooltip"
)

// Delegate receives the long press notifications of a Button. Every
// LongPressStarted is followed by exactly one LongPressStopped.
type Delegate interface {
	LongPressStarted(b *Button)
	LongPressStopped(b *Button)
}

// TooltipGate is implemented by a Delegate that decides whether a short
// tap shows the tooltip.
type TooltipGate interface {
	ShouldShowTooltip(b *Button) bool
}

// TooltipObserver is implemented by a Delegate that wants to know when
// the tooltip is shown.
type TooltipObserver interface {
	TooltipShown(b *Button)
}

// Button is the state of a record button. The zero value is an enabled
// button with the default minimum press duration.
type Button struct {
	// MinPressDuration is the minimum time between the start and
	// stop notifications. Zero means press.DefaultMinDuration.
	MinPressDuration time.Duration
	// Delegate receives notifications. It may be nil.
	Delegate Delegate

	click    gesture.Click
	press    press.Controller
	overlay  overlay.Overlay
	tip      weak.Pointer[tooltip.Tooltip]
	disabled bool
	size     image.Point

	// downAt is the time of the last pointer press, accepted or not.
	down   bool
	downAt time.Time
}

// Enabled reports whether the button accepts new presses.
func (b *Button) Enabled() bool {
	return !b.disabled
}

// SetEnabled enables or disables the button. Disabling a button while
// it is held releases it.
func (b *Button) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// Pressed reports whether a press gesture is in progress, including
// a press whose pointer was lifted before it qualified.
func (b *Button) Pressed() bool {
	return b.press.Tracking()
}

// PressState returns the press state at now.
func (b *Button) PressState(now time.Time) press.State {
	return b.press.State(now)
}

// PressedAt returns the time the current press started, or the zero
// time.
func (b *Button) PressedAt() time.Time {
	return b.press.Started()
}

// Tooltip returns the visible tooltip, or nil.
func (b *Button) Tooltip() *tooltip.Tooltip {
	t := b.tip.Value()
	if t == nil || !t.Attached() {
		return nil
	}
	return t
}

// Overlay returns the layers drawn above the button.
func (b *Button) Overlay() *overlay.Overlay {
	return &b.overlay
}

// Layout processes input, lays out the button content w on an
// elliptical hit area, and draws the tooltip overlay. ts is the style of
// tooltips shown by short taps.
func (b *Button) Layout(gtx layout.Context, ts tooltip.Style, w layout.Widget) layout.Dimensions {
	b.Update(gtx, ts)
	dims := w(gtx)
	b.size = dims.Size
	area := clip.Ellipse(image.Rectangle{Max: dims.Size}).Push(gtx.Ops)
	b.click.Add(gtx.Ops)
	area.Pop()
	b.overlay.Layout(gtx)
	if d, ok := b.press.Deadline(); ok {
		gtx.Execute(op.InvalidateCmd{At: d})
	}
	return dims
}

// Update the button state by processing events and the press timer.
// Layout calls Update.
func (b *Button) Update(gtx layout.Context, ts tooltip.Style) {
	now := gtx.Now
	b.press.MinDuration = b.MinPressDuration
	if b.press.Update(now) {
		b.stopped()
	}
	if (b.disabled || !gtx.Enabled()) && b.press.Tracking() && !b.press.Lifted() {
		if b.press.Cancel(now) {
			b.stopped()
		}
	}
	for {
		e, ok := b.click.Update(gtx.Source)
		if !ok {
			break
		}
		switch e.Kind {
		case gesture.KindPress:
			b.down = true
			b.downAt = now
			if b.disabled {
				break
			}
			if b.press.Press(now) {
				b.started()
			}
		case gesture.KindClick:
			short := b.shortTap(now)
			b.down = false
			if b.press.Release(now) {
				b.stopped()
			}
			if short && !b.disabled {
				b.showTooltip(gtx, ts)
			}
		case gesture.KindCancel:
			b.down = false
			if b.press.Cancel(now) {
				b.stopped()
			}
		}
	}
}

// shortTap reports whether the pointer cycle ending at now was shorter
// than the minimum press duration.
func (b *Button) shortTap(now time.Time) bool {
	d := b.MinPressDuration
	if d <= 0 {
		d = press.DefaultMinDuration
	}
	return b.down && now.Sub(b.downAt) < d
}

func (b *Button) started() {
	if b.Delegate != nil {
		b.Delegate.LongPressStarted(b)
	}
}

func (b *Button) stopped() {
	if b.Delegate != nil {
		b.Delegate.LongPressStopped(b)
	}
}

func (b *Button) showTooltip(gtx layout.Context, ts tooltip.Style) {
	p := tooltip.Presenter{Style: ts}
	if g, ok := b.Delegate.(TooltipGate); ok {
		p.Allow = func() bool { return g.ShouldShowTooltip(b) }
	}
	if o, ok := b.Delegate.(TooltipObserver); ok {
		p.Shown = func(*tooltip.Tooltip) { o.TooltipShown(b) }
	}
	if t := p.MaybeShow(gtx, &b.overlay, image.Rectangle{Max: b.size}); t != nil {
		b.tip = weak.Make(t)
	}
}
