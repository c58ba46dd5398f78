package game

import "time"

// Clock fires gravity ticks. Elapsed time is scaled by Mult, and Mult grows by
// SpeedUp on every frame the clock is running, so pieces fall faster the
// longer a game lasts.
type Clock struct {
	Interval time.Duration
	Mult     float64
	SpeedUp  float64

	elapsed time.Duration
	paused  bool
}

// NewClock returns a running clock with a multiplier of 1.
func NewClock(interval time.Duration, speedUp float64) *Clock {
	return &Clock{
		Interval: interval,
		Mult:     1,
		SpeedUp:  speedUp,
	}
}

// Advance moves the clock forward by dt and returns how many gravity ticks
// elapsed. A paused clock neither ticks nor speeds up.
func (c *Clock) Advance(dt time.Duration) int {
	if c.paused || c.Interval <= 0 {
		return 0
	}

	c.elapsed += time.Duration(float64(dt) * c.Mult)

	ticks := 0
	for c.elapsed >= c.Interval {
		c.elapsed -= c.Interval
		ticks++
	}

	c.Mult += c.SpeedUp
	return ticks
}

// TogglePause flips between paused and running.
func (c *Clock) TogglePause() {
	c.paused = !c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}
