package core

// Clock is a monotonic time source in fractional seconds.
type Clock interface {
	Now() float64
}

// TickClock derives time from a tick counter so that a run replays exactly
// for the same seed and inputs. The owner advances it once per tick.
type TickClock struct {
	ticks    uint64
	tickRate int
}

// NewTickClock creates a clock advancing 1/tickRate seconds per tick.
// A non-positive rate falls back to 60.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{tickRate: tickRate}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Ticks returns the number of ticks elapsed.
func (c *TickClock) Ticks() uint64 {
	return c.ticks
}

// Now returns the elapsed simulated time in seconds.
func (c *TickClock) Now() float64 {
	return float64(c.ticks) / float64(c.tickRate)
}

// ManualClock is a clock whose time is set explicitly. Used in tests.
type ManualClock struct {
	T float64
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 {
	return c.T
}

// Set moves the clock to t.
func (c *ManualClock) Set(t float64) {
	c.T = t
}

// Add moves the clock forward by dt seconds.
func (c *ManualClock) Add(dt float64) {
	c.T += dt
}
