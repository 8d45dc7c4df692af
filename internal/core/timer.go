package core

import "time"

// FixedStep paces growth ticks at a target ticks-per-second rate.
type FixedStep struct {
	interval time.Duration
	next     time.Time
}

// NewFixedStep constructs a pacer targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{}
	f.SetTPS(tps)
	return f
}

// SetTPS changes the tick rate. Safe to call between ticks.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.interval = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the next tick is due. A stall longer than one
// interval yields a single catch-up tick rather than a burst.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.next.IsZero() {
		f.next = now
	}
	if now.Before(f.next) {
		return false
	}
	f.next = f.next.Add(f.interval)
	if now.After(f.next) {
		f.next = now
	}
	return true
}
