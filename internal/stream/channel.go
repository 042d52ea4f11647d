// Package stream turns a long-lived broadcast subscription into a per-client
// stream that ends cleanly when either side goes away.
//
// A Channel has two owners. The producer (a pump goroutine) offers items and
// watches Disconnected. The consumer (the RPC handler) reads Out and must call
// Close when it returns; Close is what tells the producer the client is gone.
package stream

import (
	"context"
	"sync"
	"sync/atomic"
)

// State is the lifecycle position of a Channel.
type State int32

const (
	StateStreaming State = iota
	StateCancelled
	StateSourceClosed
)

func (s State) String() string {
	switch s {
	case StateStreaming:
		return "streaming"
	case StateCancelled:
		return "cancelled"
	case StateSourceClosed:
		return "source_closed"
	default:
		return "unknown"
	}
}

// Channel is a bounded output queue paired with a one-shot disconnect signal.
type Channel[T any] struct {
	out          chan T
	disconnected chan struct{}
	done         chan struct{}

	closeOnce  sync.Once
	finishOnce sync.Once
	state      atomic.Int32
}

// New returns a channel buffering up to capacity items.
func New[T any](capacity int) *Channel[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Channel[T]{
		out:          make(chan T, capacity),
		disconnected: make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Offer enqueues v without blocking. It reports false when the buffer is full
// or the consumer has already disconnected.
func (c *Channel[T]) Offer(v T) bool {
	select {
	case <-c.disconnected:
		return false
	default:
	}

	select {
	case c.out <- v:
		return true
	default:
		return false
	}
}

// Out is the consumer side of the queue. It is never closed; watch Done.
func (c *Channel[T]) Out() <-chan T {
	return c.out
}

// Close is the consumer's teardown hook. The first call fires Disconnected;
// later calls are no-ops.
func (c *Channel[T]) Close() {
	c.closeOnce.Do(func() {
		c.state.CompareAndSwap(int32(StateStreaming), int32(StateCancelled))
		close(c.disconnected)
	})
}

// Disconnected is closed once the consumer has called Close.
func (c *Channel[T]) Disconnected() <-chan struct{} {
	return c.disconnected
}

// Finish is the producer's end-of-input signal. Items already offered stay
// readable from Out.
func (c *Channel[T]) Finish() {
	c.finishOnce.Do(func() {
		c.state.CompareAndSwap(int32(StateStreaming), int32(StateSourceClosed))
		close(c.done)
	})
}

// Done is closed once the producer has called Finish.
func (c *Channel[T]) Done() <-chan struct{} {
	return c.done
}

// State reports the current lifecycle state.
func (c *Channel[T]) State() State {
	return State(c.state.Load())
}

// Serve feeds every item to send until ctx ends, send fails, or the producer
// finishes. On Finish the remaining buffered items are flushed first.
func (c *Channel[T]) Serve(ctx context.Context, send func(T) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case v := <-c.out:
			if err := send(v); err != nil {
				return err
			}
		case <-c.done:
			return c.drain(send)
		}
	}
}

func (c *Channel[T]) drain(send func(T) error) error {
	for {
		select {
		case v := <-c.out:
			if err := send(v); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// Forward pumps src into c until the consumer disconnects or src is closed.
// accept converts a source item; returning false skips it. onDrop is called
// for accepted items that did not fit into the buffer and may be nil.
// Forward blocks; run it on its own goroutine.
func Forward[S, T any](c *Channel[T], src <-chan S, accept func(S) (T, bool), onDrop func(T)) {
	for {
		select {
		case <-c.disconnected:
			return
		case item, ok := <-src:
			if !ok {
				c.Finish()
				return
			}
			v, keep := accept(item)
			if !keep {
				continue
			}
			if !c.Offer(v) && onDrop != nil {
				select {
				case <-c.disconnected:
					return
				default:
					onDrop(v)
				}
			}
		}
	}
}
