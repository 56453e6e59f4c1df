// Package clock supplies timestamps for stored characters
package clock

import "time"

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time {
	return f()
}

// New returns the system clock in UTC
func New() Clock {
	return Func(func() time.Time {
		return time.Now().UTC()
	})
}

// Fixed always returns At
type Fixed struct {
	At time.Time
}

// Now returns At
func (c *Fixed) Now() time.Time {
	return c.At
}

// Stepping returns a clock that starts at start and advances by step on
// every call. It is not safe for concurrent use.
func Stepping(start time.Time, step time.Duration) Clock {
	next := start
	return Func(func() time.Time {
		now := next
		next = next.Add(step)
		return now
	})
}
