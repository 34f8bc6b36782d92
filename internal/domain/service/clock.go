package service

import "time"

// Clock returns the current time. Token issuance, expiry checks and timestamps
// written by the services all read it.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// NewSystemClock provides SystemClock as a Clock.
func NewSystemClock() Clock {
	return SystemClock
}
