package clock

import "time"

// System reads the wall clock in UTC.
type System struct{}

// Now returns the current UTC instant.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
