// SPDX-License-Identifier: Unlicense OR MIT

package recordbutton

import (
	"image"
	"reflect"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"gioui.org/x/recordbutton/press"
)

var t0 = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

const minPress = 500 * time.Millisecond

type recorder struct {
	events []string
}

func (r *recorder) LongPressStarted(b *Button) { r.events = append(r.events, "start") }
func (r *recorder) LongPressStopped(b *Button) { r.events = append(r.events, "stop") }

type gatedRecorder struct {
	recorder
	allow bool
}

func (r *gatedRecorder) ShouldShowTooltip(b *Button) bool {
	r.events = append(r.events, "ask")
	return r.allow
}

func (r *gatedRecorder) TooltipShown(b *Button) { r.events = append(r.events, "shown") }

// harness drives a ButtonStyle through an input.Router.
type harness struct {
	r  input.Router
	th *material.Theme
	b  *Button
}

func newHarness(d Delegate) *harness {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	h := &harness{th: th, b: &Button{MinPressDuration: minPress, Delegate: d}}
	h.frame(0)
	return h
}

func (h *harness) frame(at time.Duration) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      h.r.Source(),
		Now:         t0.Add(at),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(100, 100)),
	}
	RecordButton(h.th, h.b).Layout(gtx)
	h.r.Frame(gtx.Ops)
}

func (h *harness) press(at time.Duration) {
	h.r.Queue(pointerEvent(pointer.Press))
	h.frame(at)
}

func (h *harness) release(at time.Duration) {
	h.r.Queue(pointerEvent(pointer.Release))
	h.frame(at)
}

func pointerEvent(k pointer.Kind) pointer.Event {
	return pointer.Event{
		Kind:     k,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(50, 50),
	}
}

func TestShortTap(t *testing.T) {
	rec := new(recorder)
	h := newHarness(rec)
	h.press(0)
	if !reflect.DeepEqual(rec.events, []string{"start"}) {
		t.Fatalf("after press got %v, want an immediate start", rec.events)
	}
	if !h.b.Pressed() {
		t.Error("button not pressed")
	}
	h.release(100 * time.Millisecond)
	if got := h.b.PressState(t0.Add(100 * time.Millisecond)); got != press.EarlyRelease {
		t.Errorf("got state %v, want %v", got, press.EarlyRelease)
	}
	tip := h.b.Tooltip()
	if tip == nil {
		t.Fatal("short tap showed no tooltip")
	}
	if tip.Text() != "Tap and Hold" {
		t.Errorf("got tooltip %q", tip.Text())
	}
	if got, want := tip.Frame().Max.Y, float32(-10); got != want {
		t.Errorf("arrow tip at y=%v, want %v", got, want)
	}
	h.frame(minPress - time.Millisecond)
	if len(rec.events) != 1 {
		t.Fatalf("got %v before the minimum press duration", rec.events)
	}
	h.frame(minPress)
	if !reflect.DeepEqual(rec.events, []string{"start", "stop"}) {
		t.Errorf("got %v, want start and stop", rec.events)
	}
	if h.b.Pressed() {
		t.Error("button still pressed")
	}
}

func TestLongPress(t *testing.T) {
	rec := new(recorder)
	h := newHarness(rec)
	h.press(0)
	h.frame(minPress)
	if got := h.b.PressState(t0.Add(minPress)); got != press.Qualified {
		t.Errorf("got state %v, want %v", got, press.Qualified)
	}
	h.release(800 * time.Millisecond)
	if !reflect.DeepEqual(rec.events, []string{"start", "stop"}) {
		t.Errorf("got %v, want start and stop", rec.events)
	}
	if h.b.Tooltip() != nil || h.b.Overlay().Len() != 0 {
		t.Error("long press showed a tooltip")
	}
}

func TestSecondPressIgnored(t *testing.T) {
	rec := new(recorder)
	h := newHarness(rec)
	h.press(0)
	h.release(100 * time.Millisecond)
	h.press(200 * time.Millisecond)
	h.release(300 * time.Millisecond)
	if got := h.b.PressedAt(); !got.Equal(t0) {
		t.Errorf("press start moved to %v", got)
	}
	h.frame(minPress)
	if !reflect.DeepEqual(rec.events, []string{"start", "stop"}) {
		t.Errorf("got %v, want a single start and stop", rec.events)
	}
	if got := h.b.Overlay().Len(); got != 1 {
		t.Errorf("got %d tooltips, want 1", got)
	}
}

func TestTooltipNotDuplicated(t *testing.T) {
	h := newHarness(nil)
	h.press(0)
	h.release(50 * time.Millisecond)
	first := h.b.Tooltip()
	h.frame(minPress)
	h.press(600 * time.Millisecond)
	h.release(650 * time.Millisecond)
	if got := h.b.Overlay().Len(); got != 1 {
		t.Fatalf("got %d layers, want 1", got)
	}
	if h.b.Tooltip() != first {
		t.Error("tooltip replaced while visible")
	}
}

func TestTooltipGate(t *testing.T) {
	for _, allow := range []bool{true, false} {
		rec := &gatedRecorder{allow: allow}
		h := newHarness(rec)
		h.press(0)
		h.release(50 * time.Millisecond)
		want := []string{"start", "ask"}
		if allow {
			want = append(want, "shown")
		}
		if !reflect.DeepEqual(rec.events, want) {
			t.Errorf("allow=%v: got %v, want %v", allow, rec.events, want)
		}
		if shown := h.b.Tooltip() != nil; shown != allow {
			t.Errorf("allow=%v: tooltip shown %v", allow, shown)
		}
	}
}

func TestDisabled(t *testing.T) {
	rec := new(recorder)
	h := newHarness(rec)
	h.b.SetEnabled(false)
	h.press(0)
	h.release(50 * time.Millisecond)
	h.frame(time.Second)
	if len(rec.events) != 0 {
		t.Errorf("disabled button reported %v", rec.events)
	}
	if h.b.Tooltip() != nil {
		t.Error("disabled button showed a tooltip")
	}
}

func TestDisableWhileHeld(t *testing.T) {
	rec := new(recorder)
	h := newHarness(rec)
	h.press(0)
	h.b.SetEnabled(false)
	h.frame(100 * time.Millisecond)
	if got := h.b.PressState(t0.Add(100 * time.Millisecond)); got != press.EarlyRelease {
		t.Errorf("got state %v, want %v", got, press.EarlyRelease)
	}
	h.frame(minPress)
	if !reflect.DeepEqual(rec.events, []string{"start", "stop"}) {
		t.Errorf("got %v, want start and stop", rec.events)
	}
}

func TestMinPressDurationDefault(t *testing.T) {
	rec := new(recorder)
	h := newHarness(rec)
	h.b.MinPressDuration = 0
	h.press(0)
	h.release(10 * time.Millisecond)
	h.frame(press.DefaultMinDuration - time.Millisecond)
	if len(rec.events) != 1 {
		t.Fatalf("got %v before the default duration", rec.events)
	}
	h.frame(press.DefaultMinDuration)
	if len(rec.events) != 2 {
		t.Errorf("got %v, want start and stop", rec.events)
	}
}

func TestHoldDuringEarlyRelease(t *testing.T) {
	rec := new(recorder)
	h := newHarness(rec)
	h.press(0)
	h.release(50 * time.Millisecond)
	// The second press lands while the first gesture is still tracked.
	h.press(400 * time.Millisecond)
	h.frame(minPress)
	h.frame(5 * time.Second)
	if h.b.Tooltip() != nil {
		t.Fatal("first tooltip still visible")
	}
	h.release(6 * time.Second)
	if h.b.Tooltip() != nil || h.b.Overlay().Len() != 0 {
		t.Error("long hold showed a tooltip")
	}
	if !reflect.DeepEqual(rec.events, []string{"start", "stop"}) {
		t.Errorf("got %v, want start and stop", rec.events)
	}
}

func TestHoldFromDisabledPress(t *testing.T) {
	rec := new(recorder)
	h := newHarness(rec)
	h.b.SetEnabled(false)
	h.press(0)
	h.b.SetEnabled(true)
	h.frame(100 * time.Millisecond)
	h.release(2 * time.Second)
	if h.b.Tooltip() != nil {
		t.Error("long hold showed a tooltip")
	}
	if len(rec.events) != 0 {
		t.Errorf("press while disabled reported %v", rec.events)
	}
}
