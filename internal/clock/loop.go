package clock

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// DefaultQueueSize is the task buffer of a Loop.
const DefaultQueueSize = 64

// ErrLoopStopped is returned when a task is submitted to a stopped loop.
var ErrLoopStopped = errors.New("event loop stopped")

// Loop is a single execution context: posted functions run one at a time,
// in order, on the goroutine that called Run. Every state-mutating callback in
// the engine, timers included, goes through a Loop.
type Loop struct {
	// tasks carries posted functions to the loop goroutine.
	tasks chan func()
	// done is closed when Run returns.
	done chan struct{}
	// started guards against running the loop twice.
	started atomic.Bool
}

// NewLoop creates a loop with the given task buffer size.
func NewLoop(size int) *Loop {
	if size <= 0 {
		size = DefaultQueueSize
	}

	return &Loop{
		tasks: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Run executes posted tasks until ctx is cancelled. Tasks still queued at
// that point are dropped.
func (l *Loop) Run(ctx context.Context) {
	if !l.started.CompareAndSwap(false, true) {
		return
	}

	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return
		case task := <-l.tasks:
			task()
		}
	}
}

// Done is closed once the loop stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues f for execution. It blocks while the queue is full and returns
// false if the loop has stopped.
func (l *Loop) Post(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.tasks <- f:
		return true
	case <-l.done:
		return false
	}
}

// Task states used by Do.
const (
	taskPending int32 = iota
	taskRunning
	taskAbandoned
)

// Do runs f on the loop and waits for it to finish. When Do returns ctx.Err()
// f has not run and never will; once f has started Do waits for it.
func (l *Loop) Do(ctx context.Context, f func()) error {
	var state atomic.Int32

	finished := make(chan struct{})

	queued := func() {
		if !state.CompareAndSwap(taskPending, taskRunning) {
			return
		}

		defer close(finished)
		f()
	}

	select {
	case l.tasks <- queued:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
	case <-ctx.Done():
		if state.CompareAndSwap(taskPending, taskAbandoned) {
			return ctx.Err()
		}

		// Already running; the loop finishes it before it can stop.
		select {
		case <-finished:
			return nil
		case <-l.done:
		}
	}

	select {
	case <-finished:
		return nil
	default:
		return ErrLoopStopped
	}
}

// Clock returns a wall clock whose callbacks are delivered through the loop.
func (l *Loop) Clock() Clock {
	return loopClock{loop: l}
}

// loopClock implements Clock on top of time.AfterFunc and a Loop.
type loopClock struct {
	// loop receives fired callbacks.
	loop *Loop
}

// Now returns the wall clock time.
func (loopClock) Now() time.Time {
	return time.Now()
}

// AfterFunc arms a runtime timer that posts f to the loop when it fires.
func (c loopClock) AfterFunc(d time.Duration, f func()) Timer {
	lt := new(loopTimer)

	lt.timer = time.AfterFunc(d, func() {
		c.loop.Post(func() {
			// Stop may have been called after the runtime timer fired but
			// before the loop got to this task.
			if lt.done.CompareAndSwap(false, true) {
				f()
			}
		})
	})

	return lt
}

// loopTimer is the Timer handle of loopClock.
type loopTimer struct {
	// timer is the underlying runtime timer.
	timer *time.Timer
	// done is set once the callback ran or the timer was stopped.
	done atomic.Bool
}

// Stop prevents the callback, even if it is already queued on the loop.
func (t *loopTimer) Stop() bool {
	t.timer.Stop()

	return t.done.CompareAndSwap(false, true)
}
