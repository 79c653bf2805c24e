package core

import "time"

// FixedStep schedules game ticks at a steady interval. The event loop
// alternates Timeout (how long it may block waiting for input) with
// ShouldStep (whether a tick is now due), so slow input handling delays a
// tick at most once rather than skewing the whole schedule.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep with the given tick interval.
func NewFixedStep(step time.Duration) *FixedStep {
	if step <= 0 {
		step = 50 * time.Millisecond
	}
	return &FixedStep{step: step}
}

// Timeout reports how long the caller may block before the next tick is
// due. It never returns a negative duration.
func (f *FixedStep) Timeout() time.Duration {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	remaining := f.step - (f.accumulator + now.Sub(f.last))
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ShouldStep reports whether the game should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
