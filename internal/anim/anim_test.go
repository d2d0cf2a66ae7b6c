package anim

import (
	"testing"
	"time"
)

func TestRingDuration(t *testing.T) {
	cases := []struct {
		progress, speed float32
		want            time.Duration
	}{
		{100, 1, time.Second},
		{75, 1, 750 * time.Millisecond},
		{75, 2, 1500 * time.Millisecond},
		{50, 1, 500 * time.Millisecond},
		{0, 1, 0},
		{100, 0.5, 500 * time.Millisecond},
	}
	for _, tc := range cases {
		if got := RingDuration(tc.progress, tc.speed); got != tc.want {
			t.Errorf("RingDuration(%v, %v) = %v, want %v", tc.progress, tc.speed, got, tc.want)
		}
	}
}

func TestSpecEndpoints(t *testing.T) {
	s := Spec{From: 0, To: 1, Duration: time.Second}
	if got := s.Value(0); got != 0 {
		t.Errorf("Value(0) = %v, want 0", got)
	}
	if got := s.Value(-time.Second); got != 0 {
		t.Errorf("Value(-1s) = %v, want 0", got)
	}
	if got := s.Value(time.Second); got != 1 {
		t.Errorf("Value(Duration) = %v, want 1", got)
	}
	if got := s.Value(5 * time.Second); got != 1 {
		t.Errorf("Value(beyond) = %v, want 1", got)
	}
	if !s.Done(time.Second) || s.Done(999*time.Millisecond) {
		t.Error("Done must flip exactly at Duration")
	}
}

func TestSpecZeroDurationIsComplete(t *testing.T) {
	s := Spec{From: 0, To: 1, Duration: 0}
	if got := s.Value(0); got != 1 {
		t.Errorf("zero-duration Value(0) = %v, want final value 1", got)
	}
	if !s.Done(0) {
		t.Error("zero-duration animation must report done immediately")
	}
}

func TestSpecEasingShape(t *testing.T) {
	s := Spec{From: 0, To: 1, Duration: time.Second}
	// Midpoint of a symmetric ease-in/ease-out curve is exactly halfway.
	if got := s.Value(500 * time.Millisecond); got < 0.499 || got > 0.501 {
		t.Errorf("Value(midpoint) = %v, want 0.5", got)
	}
	// Ease-in: first quarter covers less than a quarter of the range.
	if got := s.Value(250 * time.Millisecond); got >= 0.25 {
		t.Errorf("Value(t/4) = %v, want < 0.25 (ease-in)", got)
	}
	// Ease-out: last quarter covers less than a quarter of the range.
	if got := s.Value(750 * time.Millisecond); got <= 0.75 {
		t.Errorf("Value(3t/4) = %v, want > 0.75 (ease-out)", got)
	}
	// Monotonic non-decreasing.
	prev := float32(0)
	for ms := 0; ms <= 1000; ms += 25 {
		v := s.Value(time.Duration(ms) * time.Millisecond)
		if v < prev {
			t.Fatalf("Value not monotonic at %dms: %v < %v", ms, v, prev)
		}
		prev = v
	}
}

func TestManualClock(t *testing.T) {
	var c Manual
	start := c.Now()
	c.Advance(300 * time.Millisecond)
	if got := c.Now().Sub(start); got != 300*time.Millisecond {
		t.Errorf("advance = %v, want 300ms", got)
	}
}
