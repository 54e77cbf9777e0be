package game

import "time"

// Clock converts successive frame timestamps into per-tick deltas.
type Clock struct {
	last    time.Time
	started bool
}

// Tick returns the time since the previous call. The first call after
// construction or Reset returns 0 and only records the baseline.
// Timestamps must not go backwards.
func (c *Clock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return dt
}

// Reset forgets the baseline.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
