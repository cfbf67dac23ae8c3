// Package clock provides an injectable time source.
//
// Code that schedules work accepts a Clock instead of calling
// time.AfterFunc directly. Production wiring passes Real(); tests pass
// Fake() and move time forward with Advance.
package clock

import "time"

// Clock is the subset of the time package the site depends on.
type Clock interface {
	Now() time.Time

	// AfterFunc waits for d, then calls f. If d <= 0, f runs
	// immediately (in a new goroutine for Real, synchronously for Fake).
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stop func() bool
}

// Stop prevents the Timer from firing. It returns false if the timer
// has already fired or been stopped.
func (t *Timer) Stop() bool { return t.stop() }

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	timer := time.AfterFunc(d, f)
	return &Timer{stop: timer.Stop}
}
