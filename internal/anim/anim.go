// Package anim models the declarative animations the widget submits to the
// display layer. The widget never steps frames itself: a Spec describes the
// whole transition and the layer samples it against the frame clock.
package anim

import (
	"time"

	"github.com/chewxy/math32"
)

// Spec is a single-property animation: the value moves From -> To over
// Duration with an ease-in/ease-out curve. Zero or negative Duration means
// the animation is already complete at any elapsed time.
type Spec struct {
	From     float32
	To       float32
	Duration time.Duration
}

// Value returns the animated value at elapsed time since the animation was
// installed. Clamped to From before the start and To at or after Duration.
func (s Spec) Value(elapsed time.Duration) float32 {
	if elapsed >= s.Duration || s.Duration <= 0 {
		return s.To
	}
	if elapsed <= 0 {
		return s.From
	}
	t := float32(elapsed) / float32(s.Duration)
	return s.From + (s.To-s.From)*easeInOut(t)
}

// Done reports whether the animation has reached its final value.
func (s Spec) Done(elapsed time.Duration) bool {
	return elapsed >= s.Duration || s.Duration <= 0
}

// easeInOut is a cubic ease-in/ease-out curve on t in [0,1]: slow start,
// slow finish, steepest at the midpoint.
func easeInOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math32.Pow(-2*t+2, 3)/2
}

// RingDuration returns how long the ring draw-on animation takes for the
// given progress percent and speed multiplier: 1s * (progress/100) * speed.
// A full ring at speed 1 takes one second; lower progress or speed scale it
// down proportionally.
func RingDuration(progress, speed float32) time.Duration {
	return time.Duration(float64(time.Second) * float64(progress) / 100 * float64(speed))
}

// Clock supplies the current time to animated layers. The graphics loop uses
// the real clock; tests drive a Manual clock to sample animations at exact
// offsets.
type Clock interface {
	Now() time.Time
}

// Real is a Clock backed by time.Now.
type Real struct{}

// Now returns the current wall-clock time.
func (Real) Now() time.Time { return time.Now() }

// Manual is a Clock advanced explicitly. The zero value starts at the zero
// time; use Advance to move it forward.
type Manual struct {
	T time.Time
}

// Now returns the manually set time.
func (m *Manual) Now() time.Time { return m.T }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) { m.T = m.T.Add(d) }
