package clock

import "time"

// Timer is a handle to a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Clock tells the time and schedules one-shot callbacks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// AfterFunc runs f once after d elapses and returns a handle to cancel it.
	AfterFunc(d time.Duration, f func()) Timer
}

// Stop stops t if it is not nil and returns nil, so owners can write
// `h.timer = clock.Stop(h.timer)` when leaving a state.
func Stop(t Timer) Timer {
	if t != nil {
		t.Stop()
	}

	return nil
}
