package ecs

import "time"

// DefaultTickRate is the logical simulation rate in ticks per second.
const DefaultTickRate = 60

// FixedStep decouples the simulation rate from the rate at which real time is
// observed. Elapsed wall time is accumulated and consumed in whole steps.
//
// The accumulator holds elapsed time multiplied by the rate, so one step is
// exactly one second of scaled time and rates that do not divide a second
// never drift.
type FixedStep struct {
	rate        time.Duration
	delta       float64
	accumulator time.Duration

	// MaxSteps caps the steps returned by a single Advance call. Backlog past
	// the cap is discarded, keeping only the sub-step remainder. Zero means
	// no cap.
	MaxSteps int
}

// NewFixedStep creates an accumulator for the given rate in ticks per second.
func NewFixedStep(rate int) *FixedStep {
	if rate <= 0 {
		panic("fixed step rate must be positive")
	}
	return &FixedStep{
		rate:  time.Duration(rate),
		delta: 1.0 / float64(rate),
	}
}

// Step returns the wall-clock duration of one step, rounded down to the
// nanosecond.
func (f *FixedStep) Step() time.Duration {
	return time.Second / f.rate
}

// DeltaTime returns the logical length of one step in seconds (exactly 1/rate).
func (f *FixedStep) DeltaTime() float64 {
	return f.delta
}

// Advance adds elapsed time to the accumulator and returns how many steps are
// now due. Negative durations are ignored.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.accumulator += elapsed * f.rate
	}

	steps := 0
	for f.accumulator >= time.Second {
		if f.MaxSteps > 0 && steps >= f.MaxSteps {
			f.accumulator %= time.Second
			break
		}
		f.accumulator -= time.Second
		steps++
	}
	return steps
}

// Alpha returns how far the accumulator is into the next step, in [0, 1).
func (f *FixedStep) Alpha() float64 {
	return float64(f.accumulator) / float64(time.Second)
}

// Pending returns the accumulated time not yet consumed by a step.
func (f *FixedStep) Pending() time.Duration {
	return f.accumulator / f.rate
}

// Reset discards any accumulated time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
}
