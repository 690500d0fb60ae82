package clock

import "time"

// Clock supplies the current time. Transition and rollover logic never call
// time.Now directly so tests can pin the clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns a Clock backed by the system time in UTC.
func New() Clock {
	return realClock{}
}

// Fixed is a Clock pinned to a settable instant.
type Fixed struct {
	Time time.Time
}

func (f *Fixed) Now() time.Time {
	return f.Time
}

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.Time = f.Time.Add(d)
}

// NewFixed returns a Fixed clock starting at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{Time: t}
}
