package core

import "time"

// FixedStep paces work to a steady rate independent of the caller's loop
// frequency.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires rate times per second. The
// first call to ShouldStep always fires.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate reports the current steps per second.
func (f *FixedStep) Rate() int {
	if f.step <= 0 {
		return 0
	}
	return int(time.Second / f.step)
}

// Trigger forces the next ShouldStep call to fire.
func (f *FixedStep) Trigger() {
	f.accumulator = f.step
}

// ShouldStep reports whether a step is due. Missed steps are not replayed;
// a stalled caller fires once and then resumes the normal cadence.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = 0
	}
	return true
}
