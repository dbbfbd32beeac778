package app

import "time"

// Clock abstracts wall-clock access so the polling loop and the digest can be
// driven deterministically in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock is the real wall clock used outside of tests.
var SystemClock Clock = systemClock{}
