package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	clock.Advance(5 * time.Second)
	want := epoch.Add(5 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockAfterFuncFiresAtDeadline(t *testing.T) {
	clock := Fake(epoch)
	fired := 0
	clock.AfterFunc(3*time.Second, func() { fired++ })

	clock.Advance(2 * time.Second)
	if fired != 0 {
		t.Fatal("AfterFunc fired before deadline")
	}
	clock.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("fired = %d after reaching deadline, want 1", fired)
	}
	clock.Advance(time.Hour)
	if fired != 1 {
		t.Fatalf("fired = %d after further Advance, want 1", fired)
	}
}

func TestFakeClockAfterFuncZeroRunsSynchronously(t *testing.T) {
	clock := Fake(epoch)
	fired := false
	timer := clock.AfterFunc(0, func() { fired = true })
	if !fired {
		t.Fatal("AfterFunc(0) should run immediately")
	}
	if timer.Stop() {
		t.Fatal("Stop on an already-run timer should return false")
	}
}

func TestFakeClockStopPreventsFire(t *testing.T) {
	clock := Fake(epoch)
	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("first Stop should return true")
	}
	if timer.Stop() {
		t.Fatal("second Stop should return false")
	}
	clock.Advance(time.Minute)
	if fired {
		t.Fatal("stopped timer fired")
	}
	if n := clock.PendingCount(); n != 0 {
		t.Fatalf("PendingCount() = %d, want 0", n)
	}
}

func TestFakeClockFiresInDeadlineOrder(t *testing.T) {
	clock := Fake(epoch)
	var order []int
	clock.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	clock.AfterFunc(1*time.Second, func() { order = append(order, 1) })
	clock.AfterFunc(2*time.Second, func() { order = append(order, 2) })
	clock.AfterFunc(1*time.Second, func() { order = append(order, 11) })

	clock.Advance(5 * time.Second)

	want := []int{1, 11, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestFakeClockChainedCallbacksWithinOneAdvance(t *testing.T) {
	clock := Fake(epoch)
	var times []time.Time
	var step func()
	step = func() {
		times = append(times, clock.Now())
		if len(times) < 4 {
			clock.AfterFunc(time.Second, step)
		}
	}
	clock.AfterFunc(time.Second, step)

	clock.Advance(10 * time.Second)

	if len(times) != 4 {
		t.Fatalf("callbacks ran %d times, want 4", len(times))
	}
	for i, got := range times {
		want := epoch.Add(time.Duration(i+1) * time.Second)
		if !got.Equal(want) {
			t.Errorf("callback %d saw Now() = %v, want %v", i, got, want)
		}
	}
	if got := clock.Now(); !got.Equal(epoch.Add(10 * time.Second)) {
		t.Fatalf("Now() after Advance = %v", got)
	}
}

func TestFakeClockWaitForTimers(t *testing.T) {
	clock := Fake(epoch)
	done := make(chan struct{})
	go func() {
		clock.AfterFunc(time.Second, func() { close(done) })
	}()

	clock.WaitForTimers(1)
	clock.Advance(time.Second)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not run after Advance")
	}
}
