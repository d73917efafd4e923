package schedule

import "time"

// Countdown owns the reset target the header displays. It is driven
// from the UI loop and is not goroutine-safe.
type Countdown struct {
	clock  Clock
	target time.Time
}

func NewCountdown(clock Clock) *Countdown {
	return &Countdown{clock: clock, target: NextReset(clock.Now())}
}

// Target returns the reset currently counted down to.
func (c *Countdown) Target() time.Time { return c.target }

// Tick advances the countdown by one display step. It reads the clock
// once and recomputes the target before deriving the remainder, so a
// tick landing at or past the reset reports the new week instead of a
// stale or negative value. rolled reports that a reset just passed.
func (c *Countdown) Tick() (left Remaining, rolled bool) {
	now := c.clock.Now()
	if !now.Before(c.target) {
		c.target = NextReset(now)
		rolled = true
	}
	return Until(c.target, now), rolled
}
