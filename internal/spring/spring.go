// SPDX-License-Identifier: Unlicense OR MIT

// Package spring implements damped spring timing for animations.
package spring

import (
	"math"
	"time"
)

// Spring describes a damped harmonic oscillator moving a value from its
// start to its target. InitialVelocity is measured in units of the total
// distance per second.
type Spring struct {
	Mass            float64
	Stiffness       float64
	Damping         float64
	InitialVelocity float64
}

const (
	// restThreshold is the fraction of the distance below which the
	// spring is considered at rest.
	restThreshold = 0.001
	maxSettling   = 10 * time.Second
	settleStep    = time.Millisecond
)

// Default returns the spring with unit mass and a stiffness of 100.
func Default(damping, velocity float64) Spring {
	return Spring{Mass: 1, Stiffness: 100, Damping: damping, InitialVelocity: velocity}
}

// Progress returns the fraction of the distance covered at t. It
// starts at 0 and approaches 1, overshooting when the spring is
// underdamped.
func (s Spring) Progress(t time.Duration) float64 {
	return 1 + s.offset(t.Seconds())
}

// offset is the signed distance to the target in units of the total
// distance, starting at -1.
func (s Spring) offset(t float64) float64 {
	m := s.Mass
	if m <= 0 {
		m = 1
	}
	w0 := math.Sqrt(s.Stiffness / m)
	if w0 == 0 {
		return -1 + s.InitialVelocity*t
	}
	zeta := s.Damping / (2 * math.Sqrt(s.Stiffness*m))
	v0 := s.InitialVelocity
	switch {
	case zeta < 1:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		c := -1.0
		d := (v0 + zeta*w0*c) / wd
		return math.Exp(-zeta*w0*t) * (c*math.Cos(wd*t) + d*math.Sin(wd*t))
	case zeta == 1:
		c := -1.0
		d := v0 + w0*c
		return (c + d*t) * math.Exp(-w0*t)
	default:
		r := w0 * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*w0 + r
		r2 := -zeta*w0 - r
		a := (v0 + r2) / (r1 - r2)
		b := -1 - a
		return a*math.Exp(r1*t) + b*math.Exp(r2*t)
	}
}

// SettlingDuration returns the time after which the spring stays within
// a small fraction of its target.
func (s Spring) SettlingDuration() time.Duration {
	var last time.Duration
	for t := time.Duration(0); t <= maxSettling; t += settleStep {
		if math.Abs(s.offset(t.Seconds())) >= restThreshold {
			last = t + settleStep
		}
	}
	return last
}

// Animation animates a value from From to To with a spring. The zero
// Animation is stopped.
type Animation struct {
	Spring   Spring
	From, To float32
	// Duration of one pass. Zero means the spring's settling duration.
	Duration time.Duration
	// AutoReverse plays the animation backwards after the forward pass.
	AutoReverse bool

	start    time.Time
	running  bool
	finished bool
}

// Start the animation at now.
func (a *Animation) Start(now time.Time) {
	if a.Duration == 0 {
		a.Duration = a.Spring.SettlingDuration()
	}
	a.start = now
	a.running = true
	a.finished = false
}

// Running reports whether the animation is started and not yet
// finished.
func (a *Animation) Running() bool {
	return a.running
}

// Total returns the duration of all passes.
func (a *Animation) Total() time.Duration {
	if a.AutoReverse {
		return 2 * a.Duration
	}
	return a.Duration
}

// Value returns the animated value at now and reports whether the
// animation is complete.
func (a *Animation) Value(now time.Time) (float32, bool) {
	if !a.running {
		if a.finished && !a.AutoReverse {
			return a.To, true
		}
		return a.From, true
	}
	t := now.Sub(a.start)
	if t < 0 {
		t = 0
	}
	if t >= a.Total() {
		a.running = false
		a.finished = true
		if a.AutoReverse {
			return a.From, true
		}
		return a.To, true
	}
	if t > a.Duration {
		t = 2*a.Duration - t
	}
	p := float32(a.Spring.Progress(t))
	return a.From + (a.To-a.From)*p, false
}
