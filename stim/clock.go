package stim

import "time"

// Clock measures session time as a monotonic offset from a fixed origin.
// All click timestamps are durations on this clock, never wall time.
type Clock struct {
	origin time.Time
}

func NewClock() *Clock {
	return &Clock{origin: time.Now()}
}

func (c *Clock) Now() time.Duration {
	return time.Since(c.origin)
}
