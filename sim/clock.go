package sim

import (
	"context"
	"time"
)

// Clock schedules fixed-rate simulation ticks. A late tick pushes the
// schedule back instead of queueing catch-up ticks.
type Clock struct {
	period time.Duration
	next   time.Time
}

// NewClock creates a clock that fires every period.
func NewClock(period time.Duration) *Clock {
	if period <= 0 {
		period = time.Second / 60
	}
	return &Clock{period: period}
}

// Period returns the tick period.
func (c *Clock) Period() time.Duration {
	return c.period
}

// Due reports whether a tick should run at now and, if so, schedules the next one.
// The first call is always due.
func (c *Clock) Due(now time.Time) bool {
	if c.next.IsZero() {
		c.next = now
	}
	if now.Before(c.next) {
		return false
	}

	c.next = c.next.Add(c.period)
	if !c.next.After(now) {
		// Missed at least one deadline: drop the backlog
		c.next = now.Add(c.period)
	}
	return true
}

// Reset clears the schedule so the next Due call fires immediately.
func (c *Clock) Reset() {
	c.next = time.Time{}
}

// Run calls tick once per period until ctx is cancelled. Ticks the callback
// is too slow for are dropped, not queued.
func (c *Clock) Run(ctx context.Context, tick func()) error {
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick()
		}
	}
}
