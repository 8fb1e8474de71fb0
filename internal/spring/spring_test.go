// SPDX-License-Identifier: Unlicense OR MIT

package spring

import (
	"math"
	"testing"
	"time"
)

func TestProgressBounds(t *testing.T) {
	for _, s := range []Spring{
		Default(15, 10), // underdamped
		Default(20, 0),  // critically damped
		Default(40, 5),  // overdamped
	} {
		if p := s.Progress(0); math.Abs(p) > 1e-9 {
			t.Errorf("%+v: progress at 0 = %v, want 0", s, p)
		}
		d := s.SettlingDuration()
		if d <= 0 || d >= maxSettling {
			t.Fatalf("%+v: settling duration %v out of range", s, d)
		}
		for t2 := d; t2 < d+time.Second; t2 += 10 * time.Millisecond {
			if p := s.Progress(t2); math.Abs(p-1) >= restThreshold {
				t.Errorf("%+v: progress at %v = %v, not at rest", s, t2, p)
			}
		}
	}
}

func TestInitialVelocity(t *testing.T) {
	s := Default(15, 10)
	const dt = time.Microsecond
	v := s.Progress(dt) / dt.Seconds()
	if math.Abs(v-10) > 0.01 {
		t.Errorf("initial velocity %v, want 10", v)
	}
}

func TestSettlingDuration(t *testing.T) {
	// Envelope bound for mass 1, stiffness 100, damping 15, velocity 10.
	zw := 7.5
	wd := 10 * math.Sqrt(1-0.75*0.75)
	amp := math.Hypot(1, (10-zw)/wd)
	bound := time.Duration(math.Log(amp/restThreshold) / zw * float64(time.Second))
	got := Default(15, 10).SettlingDuration()
	if got > bound+settleStep {
		t.Errorf("settling duration %v exceeds envelope bound %v", got, bound)
	}
	if got < 500*time.Millisecond {
		t.Errorf("settling duration %v too short", got)
	}
}

func TestAnimationAutoReverse(t *testing.T) {
	t0 := time.Unix(0, 0)
	a := Animation{Spring: Default(15, 10), From: 0, To: 1, AutoReverse: true}
	if v, done := a.Value(t0); !done || v != 0 {
		t.Errorf("stopped animation: got %v, %v", v, done)
	}
	a.Start(t0)
	if !a.Running() {
		t.Fatal("animation not running after Start")
	}
	d := a.Duration
	if d != a.Spring.SettlingDuration() {
		t.Errorf("duration %v, want settling duration", d)
	}
	if got := a.Total(); got != 2*d {
		t.Errorf("total %v, want %v", got, 2*d)
	}
	if v, done := a.Value(t0); done || v != 0 {
		t.Errorf("start: got %v, %v", v, done)
	}
	if v, done := a.Value(t0.Add(d)); done || math.Abs(float64(v)-1) > 0.01 {
		t.Errorf("end of forward pass: got %v, %v", v, done)
	}
	fwd, _ := a.Value(t0.Add(d / 4))
	rev, _ := a.Value(t0.Add(2*d - d/4))
	if math.Abs(float64(fwd-rev)) > 1e-6 {
		t.Errorf("reverse pass %v does not mirror forward pass %v", rev, fwd)
	}
	if v, done := a.Value(t0.Add(2 * d)); !done || v != 0 {
		t.Errorf("end: got %v, %v", v, done)
	}
	if a.Running() {
		t.Error("animation still running after completion")
	}
}

func TestAnimationForward(t *testing.T) {
	t0 := time.Unix(0, 0)
	a := Animation{Spring: Default(15, 10), From: 2, To: 4, Duration: 100 * time.Millisecond}
	a.Start(t0)
	if v, done := a.Value(t0.Add(time.Second)); !done || v != 4 {
		t.Errorf("got %v, %v, want 4, true", v, done)
	}
	if v, done := a.Value(t0.Add(2 * time.Second)); !done || v != 4 {
		t.Errorf("after completion got %v, %v, want 4, true", v, done)
	}
}
