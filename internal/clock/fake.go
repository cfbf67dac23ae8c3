package clock

import (
	"sync"
	"time"
)

// Fake returns a FakeClock set to initial. Time stands still until
// Advance is called.
func Fake(initial time.Time) *FakeClock {
	c := &FakeClock{current: initial}
	c.changed = sync.NewCond(&c.mu)
	return c
}

// FakeClock is a deterministic Clock. Callbacks run synchronously in
// the goroutine calling Advance, in deadline order. Do not call Advance
// from inside a callback.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	seq     uint64
	waiters []*waiter
	changed *sync.Cond
}

type waiter struct {
	deadline time.Time
	seq      uint64
	callback func()
	stopped  bool
	fired    bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{stop: func() bool { return false }}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	w := &waiter{deadline: c.current.Add(d), seq: c.seq, callback: f}
	c.waiters = append(c.waiters, w)
	c.changed.Broadcast()

	return &Timer{stop: func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if w.stopped || w.fired {
			return false
		}
		w.stopped = true
		return true
	}}
}

// Advance moves the clock forward by d, firing every callback whose
// deadline falls inside the window. Before each callback runs the clock
// reads that callback's deadline, so timers scheduled from a callback
// are relative to when it fired and may fire within the same Advance.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.current.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popNextLocked(target)
		if next == nil {
			c.current = target
			c.mu.Unlock()
			return
		}
		c.current = next.deadline
		c.mu.Unlock()

		next.callback()
	}
}

// popNextLocked removes and returns the earliest live waiter due at or
// before target. Ties resolve in scheduling order.
func (c *FakeClock) popNextLocked(target time.Time) *waiter {
	index := -1
	for i, w := range c.waiters {
		if w.stopped || w.deadline.After(target) {
			continue
		}
		if index < 0 || earlier(w, c.waiters[index]) {
			index = i
		}
	}
	if index < 0 {
		c.pruneLocked()
		return nil
	}
	w := c.waiters[index]
	w.fired = true
	c.waiters = append(c.waiters[:index], c.waiters[index+1:]...)
	return w
}

func earlier(a, b *waiter) bool {
	if a.deadline.Equal(b.deadline) {
		return a.seq < b.seq
	}
	return a.deadline.Before(b.deadline)
}

func (c *FakeClock) pruneLocked() {
	live := c.waiters[:0]
	for _, w := range c.waiters {
		if !w.stopped {
			live = append(live, w)
		}
	}
	c.waiters = live
}

// WaitForTimers blocks until at least n callbacks are pending.
func (c *FakeClock) WaitForTimers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.pendingLocked() < n {
		c.changed.Wait()
	}
}

// PendingCount returns the number of callbacks that are scheduled and
// not stopped.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingLocked()
}

func (c *FakeClock) pendingLocked() int {
	count := 0
	for _, w := range c.waiters {
		if !w.stopped {
			count++
		}
	}
	return count
}
