package report

import "time"

// Clock abstracts time.Now() so the password-age cutoff can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard time package.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
