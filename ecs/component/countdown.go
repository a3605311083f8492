package component

import "time"

// DefaultCountdown is the per-level time limit.
const DefaultCountdown = 25 * time.Second

// Countdown is the optional level timer.
type Countdown struct {
	Duration time.Duration
	Elapsed  time.Duration
}

func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{Duration: d}
}

func (c *Countdown) Tick(dt time.Duration) {
	if dt > 0 {
		c.Elapsed += dt
	}
}

func (c *Countdown) Finished() bool {
	return c.Elapsed >= c.Duration
}

func (c *Countdown) Remaining() time.Duration {
	if c.Finished() {
		return 0
	}
	return c.Duration - c.Elapsed
}
