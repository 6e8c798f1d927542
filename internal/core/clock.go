package core

import "time"

// Clock is a monotonic time source measured as an offset from an origin.
// The value must never decrease and must not follow wall-clock adjustments.
type Clock interface {
	Now() time.Duration
}

// SimClock is a simulation clock that only moves when advanced.
// Platforms advance it once per frame so that a run is fully determined
// by its seed and the inputs observed on each frame.
type SimClock struct {
	now time.Duration
}

// NewSimClock returns a simulation clock at zero.
func NewSimClock() *SimClock {
	return &SimClock{}
}

// Now returns the current simulation time.
func (c *SimClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward. Negative values are ignored.
func (c *SimClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set jumps the clock to t if t is not in the past.
func (c *SimClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}
