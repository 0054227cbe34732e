package tempo

import "time"

// Clock supplies the monotonic readings a [Timer] measures against.
// Implementations must return monotonically non-decreasing instants.
type Clock interface {
	Now() time.Time
}

// systemClock reads the process clock. Go's time.Now carries a monotonic
// component, so differences between readings are immune to wall clock jumps.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Option configures a [Timer] created by [New].
type Option func(*Timer)

// WithClock makes the timer (and every child context created from it) read
// time from c instead of the system clock.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}
