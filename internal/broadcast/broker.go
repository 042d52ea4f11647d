// Package broadcast is an in-process publish/subscribe registry.
//
// Every subscriber owns a bounded buffer. Publish never blocks: a subscriber
// whose buffer is full loses the item and the loss is counted on its
// Subscription so the consumer can report it.
package broadcast

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrNoSubscribers is returned by Publish when nobody is listening.
	// Callers treat it as informational.
	ErrNoSubscribers = errors.New("broadcast: no subscribers")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("broadcast: closed")
)

// Broker fans values of type T out to every live subscription.
type Broker[T any] struct {
	capacity int

	mu     sync.RWMutex
	subs   map[*Subscription[T]]struct{}
	closed bool
}

// New returns a broker whose subscriptions buffer up to capacity items.
func New[T any](capacity int) *Broker[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Broker[T]{
		capacity: capacity,
		subs:     make(map[*Subscription[T]]struct{}),
	}
}

// Subscribe registers a new subscription. Only values published after this
// call are delivered to it.
func (b *Broker[T]) Subscribe() (*Subscription[T], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	s := &Subscription[T]{
		broker: b,
		ch:     make(chan T, b.capacity),
	}
	b.subs[s] = struct{}{}
	return s, nil
}

// Publish offers v to every subscription and returns how many accepted it.
func (b *Broker[T]) Publish(v T) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return 0, ErrClosed
	}
	if len(b.subs) == 0 {
		return 0, ErrNoSubscribers
	}

	delivered := 0
	for s := range b.subs {
		select {
		case s.ch <- v:
			delivered++
		default:
			s.lagged.Add(1)
		}
	}
	return delivered, nil
}

// SubscriberCount returns the number of live subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close ends every subscription. Their channels are closed after any
// buffered items, and further Subscribe and Publish calls fail.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subs {
		close(s.ch)
		delete(b.subs, s)
	}
}

func (b *Broker[T]) remove(s *Subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[s]; !ok {
		return
	}
	delete(b.subs, s)
	close(s.ch)
}

// Subscription is one consumer's view of a Broker.
type Subscription[T any] struct {
	broker *Broker[T]
	ch     chan T
	lagged atomic.Uint64
}

// C returns the receive side. It is closed by Unsubscribe or Broker.Close.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// TakeLagged returns the number of items dropped since the previous call.
func (s *Subscription[T]) TakeLagged() uint64 {
	return s.lagged.Swap(0)
}

// Unsubscribe detaches the subscription. Safe to call more than once.
func (s *Subscription[T]) Unsubscribe() {
	s.broker.remove(s)
}
