// Package gametime provides the game clock and the countdown timers built on
// it. Nothing here reads wall-clock time: the frame driver advances the clock
// by the frame ratio it was handed.
package gametime

import "math"

// Clock is a monotonically increasing game time in milliseconds.
type Clock struct {
	now     float64
	frameMS float64
}

// NewClock returns a clock at zero. frameMS is the nominal frame period used
// to turn frame ratios into milliseconds.
func NewClock(frameMS float64) *Clock {
	return &Clock{frameMS: frameMS}
}

// Advance moves the clock forward by dt nominal frames. Negative, NaN and
// infinite frames are ignored.
func (c *Clock) Advance(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	c.now += dt * c.frameMS
}

// Now returns the current game time in milliseconds.
func (c *Clock) Now() float64 { return c.now }

// FrameMS returns the nominal frame period.
func (c *Clock) FrameMS() float64 { return c.frameMS }

// Timer is a countdown measured against a Clock.
type Timer struct {
	clock   *Clock
	start   float64
	period  float64
	running bool
}

// NewTimer returns a stopped timer bound to clock.
func NewTimer(clock *Clock) Timer {
	return Timer{clock: clock}
}

// Start (re)starts the countdown.
func (t *Timer) Start(periodMS float64) {
	if t.clock == nil {
		return
	}
	t.start = t.clock.Now()
	t.period = periodMS
	t.running = true
}

// Stop cancels the countdown.
func (t *Timer) Stop() {
	t.running = false
}

// Check reports whether the timer is still counting. An expired timer stops
// itself, so the first Check after expiry returns false.
func (t *Timer) Check() bool {
	if !t.running || t.clock == nil {
		return false
	}
	if t.clock.Now()-t.start >= t.period {
		t.running = false
		return false
	}
	return true
}

// Started reports whether the timer was started and not yet seen expired.
func (t *Timer) Started() bool { return t.running }

// Left returns the remaining milliseconds, or 0 when stopped.
func (t *Timer) Left() float64 {
	if !t.Check() {
		return 0
	}
	return t.period - (t.clock.Now() - t.start)
}
