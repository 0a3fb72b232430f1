package await

import "time"

// A Clock supplies time to an [Executor]'s timer registry and lets the
// executor block until the earliest pending deadline.
//
// The default clock is the system monotonic clock.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// Sleep blocks until d has elapsed.
	// It is only called with positive durations, from the executor's
	// own loop, when no task is runnable.
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// A VirtualClock is a [Clock] whose Sleep advances its notion of now
// instantly instead of blocking.
//
// Attached to an executor with [Executor.SetClock], it makes timer-driven
// code run immediately and deterministically, which is what tests want.
// The zero VirtualClock is ready to use and starts at the zero time.
//
// A VirtualClock must not be shared by more than one [Executor].
type VirtualClock struct {
	now time.Time
}

// Now returns the clock's current instant.
func (c *VirtualClock) Now() time.Time { return c.now }

// Sleep advances the clock by d without blocking.
func (c *VirtualClock) Sleep(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}
