package clock

import (
	"slices"
	"sync"
	"time"
)

// Fake is a manually driven Clock for tests. Callbacks run inline on the
// goroutine calling Advance, which plays the role of the execution context.
type Fake struct {
	// mu protects the fields below.
	mu sync.Mutex
	// now is the current fake time.
	now time.Time
	// seq orders timers armed for the same instant.
	seq uint64
	// timers holds armed, not yet fired timers.
	timers []*fakeTimer
}

// NewFake returns a fake clock set to now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the fake time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// AfterFunc arms a fake timer.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++

	t := &fakeTimer{
		clock: f,
		at:    f.now.Add(d),
		seq:   f.seq,
		fn:    fn,
	}

	f.timers = append(f.timers, t)

	return t
}

// Advance moves time forward by d, firing every timer that becomes due in
// deadline order. Timers armed by callbacks fire too if they fall due within
// the window.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()

		next := f.nextLocked()
		if next == nil || next.at.After(target) {
			f.now = target
			f.mu.Unlock()

			return
		}

		f.now = next.at
		f.removeLocked(next)
		f.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of armed timers.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.timers)
}

// NextDeadline returns the earliest armed deadline, if any.
func (f *Fake) NextDeadline() (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := f.nextLocked()
	if next == nil {
		return time.Time{}, false
	}

	return next.at, true
}

func (f *Fake) nextLocked() *fakeTimer {
	if len(f.timers) == 0 {
		return nil
	}

	return slices.MinFunc(f.timers, func(a, b *fakeTimer) int {
		if c := a.at.Compare(b.at); c != 0 {
			return c
		}

		if a.seq < b.seq {
			return -1
		}

		return 1
	})
}

func (f *Fake) removeLocked(t *fakeTimer) bool {
	idx := slices.Index(f.timers, t)
	if idx < 0 {
		return false
	}

	f.timers = slices.Delete(f.timers, idx, idx+1)

	return true
}

// fakeTimer is a Timer armed on a Fake.
type fakeTimer struct {
	clock *Fake
	at    time.Time
	seq   uint64
	fn    func()
}

// Stop disarms the timer if it has not fired yet.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	return t.clock.removeLocked(t)
}
