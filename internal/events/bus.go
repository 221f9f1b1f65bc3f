package events

import (
	"errors"
	"sync"
)

// DefaultBuffer is the channel capacity used when Subscribe gets a
// non-positive size.
const DefaultBuffer = 32

// ErrSubscriptionClosed is returned when closing a subscription twice.
var ErrSubscriptionClosed = errors.New("subscription already closed")

// Bus is a non-blocking fan-out of events.
type Bus struct {
	// mu protects subs.
	mu sync.Mutex
	// subs holds the live subscriptions.
	subs map[*Subscription]struct{}
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a new subscriber with the given channel capacity.
func (b *Bus) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	s := &Subscription{
		bus: b,
		ch:  make(chan Event, buffer),
	}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	return s
}

// Publish delivers e to every subscriber that has room for it and drops the
// ones that do not.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for s := range b.subs {
		select {
		case s.ch <- e:
		default:
			s.dropped = true
			b.removeLocked(s)
		}
	}
}

// Len returns the number of live subscribers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}

// Close unsubscribes everybody.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for s := range b.subs {
		b.removeLocked(s)
	}
}

func (b *Bus) removeLocked(s *Subscription) bool {
	if _, ok := b.subs[s]; !ok {
		return false
	}

	delete(b.subs, s)
	close(s.ch)

	return true
}

// Subscription is a registered event consumer.
type Subscription struct {
	// bus is the owning bus.
	bus *Bus
	// ch receives events.
	ch chan Event
	// dropped is set when the bus removed a lagging subscriber.
	dropped bool
}

// C returns the event channel. It is closed when the subscription ends,
// including when the subscriber could not keep up.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Dropped reports whether the bus removed the subscriber for lagging.
func (s *Subscription) Dropped() bool {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	return s.dropped
}

// Close ends the subscription.
func (s *Subscription) Close() error {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if !s.bus.removeLocked(s) {
		return ErrSubscriptionClosed
	}

	return nil
}
