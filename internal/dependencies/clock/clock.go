// Package clock supplies the wall time that frames are measured against.
package clock

import "time"

// Clock is read once per frame; tests swap in mocks.MockClock
type Clock interface {
	Now() time.Time
}

// System reads the monotonic system clock
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

// Now returns the current time, carrying a monotonic reading so frame
// deltas ignore wall clock adjustments
func (System) Now() time.Time {
	return time.Now()
}

// Delta returns the time from prev to the clock's current reading, never
// negative
func Delta(c Clock, prev time.Time) (now time.Time, d time.Duration) {
	now = c.Now()
	d = now.Sub(prev)
	if d < 0 {
		d = 0
	}
	return now, d
}
