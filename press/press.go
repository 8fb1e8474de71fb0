// SPDX-License-Identifier: Unlicense OR MIT

/*
Package press implements the timing state machine of a press-and-hold
control.

A Controller reports the start of a potential long press as soon as a
pointer goes down, and reports its stop no earlier than MinDuration after
the press, even when the pointer is lifted before that. The controller
never reads the clock; callers pass the current time to every method and
arrange for Update to run once the instant returned by Deadline has passed.
With Gio that is done by executing an op.InvalidateCmd with At set to the
deadline.
*/
package press

import "time"

// DefaultMinDuration is used by a Controller whose MinDuration is zero.
const DefaultMinDuration = time.Second

// Controller tracks a single press gesture.
type Controller struct {
	// MinDuration is the minimum time the gesture lasts before
	// a stop is reported. It is read when a gesture starts; changing it
	// does not affect a gesture in progress.
	MinDuration time.Duration

	// tracking is set from a press until the gesture resolves.
	tracking bool
	// started is the time of the press that started the gesture.
	started time.Time
	// qualifyAt is the earliest time the gesture may stop.
	qualifyAt time.Time
	// lifted is set when the pointer was released before qualifyAt.
	lifted bool

	// pending reports whether the qualification timer is armed.
	pending  bool
	deadline time.Time
}

// State is the effective state of a Controller.
type State uint8

const (
	// Idle means no gesture is tracked.
	Idle State = iota
	// Tracking means the pointer is down and the minimum duration
	// has not elapsed.
	Tracking
	// Qualified means the minimum duration has elapsed and the
	// pointer is still down.
	Qualified
	// EarlyRelease means the pointer was lifted before the minimum
	// duration elapsed. The gesture resolves when the timer fires.
	EarlyRelease
)

// Press records a pointer press at now. It reports whether a new
// gesture started, in which case the caller must deliver the long press
// start notification. A press while a gesture is tracked is ignored.
func (c *Controller) Press(now time.Time) bool {
	if c.tracking {
		return false
	}
	d := c.MinDuration
	if d <= 0 {
		d = DefaultMinDuration
	}
	c.tracking = true
	c.started = now
	c.qualifyAt = now.Add(d)
	c.lifted = false
	c.pending = true
	c.deadline = c.qualifyAt
	return true
}

// Release records the pointer release at now. It reports whether the
// gesture stopped. A release before the minimum duration elapsed is
// remembered and resolved by Update.
func (c *Controller) Release(now time.Time) bool {
	if !c.tracking || c.lifted {
		return false
	}
	if now.Before(c.qualifyAt) {
		c.lifted = true
		return false
	}
	c.resolve()
	return true
}

// Update runs the qualification timer. It reports whether the gesture
// stopped because the pointer was lifted early. Update does nothing until
// the deadline has passed, and nothing when the gesture it was armed for
// is already resolved.
func (c *Controller) Update(now time.Time) bool {
	if !c.pending || now.Before(c.deadline) {
		return false
	}
	c.pending = false
	if !c.tracking || !c.lifted {
		return false
	}
	c.resolve()
	return true
}

// Cancel abandons the current gesture as if the pointer was released at
// now. It reports whether the gesture stopped immediately.
func (c *Controller) Cancel(now time.Time) bool {
	return c.Release(now)
}

func (c *Controller) resolve() {
	c.tracking = false
	c.lifted = false
	c.started = time.Time{}
	c.qualifyAt = time.Time{}
	// The timer has nothing left to do for this gesture.
	c.pending = false
}

// Deadline returns the time the qualification timer fires, if armed.
func (c *Controller) Deadline() (time.Time, bool) {
	return c.deadline, c.pending
}

// Tracking reports whether a gesture is in progress.
func (c *Controller) Tracking() bool {
	return c.tracking
}

// Lifted reports whether the pointer was released before the gesture
// qualified.
func (c *Controller) Lifted() bool {
	return c.tracking && c.lifted
}

// Started returns the time of the press that started the current
// gesture, or the zero time.
func (c *Controller) Started() time.Time {
	return c.started
}

// Qualified reports whether the current gesture has lasted at least the
// minimum duration at now.
func (c *Controller) Qualified(now time.Time) bool {
	return c.tracking && !now.Before(c.qualifyAt)
}

// Elapsed returns the time since the current gesture started, or zero.
func (c *Controller) Elapsed(now time.Time) time.Duration {
	if !c.tracking {
		return 0
	}
	return now.Sub(c.started)
}

// State returns the state of the controller at now.
func (c *Controller) State(now time.Time) State {
	switch {
	case !c.tracking:
		return Idle
	case c.lifted:
		return EarlyRelease
	case c.Qualified(now):
		return Qualified
	default:
		return Tracking
	}
}

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Tracking:
		return "Tracking"
	case Qualified:
		return "Qualified"
	case EarlyRelease:
		return "EarlyRelease"
	default:
		panic("invalid State")
	}
}
