package store

import (
	"context"
	"sync/atomic"
)

// Notification is one event delivered to a Subscription: either a new
// sequence number became visible, or the subscriber fell behind and must
// resync against the Store's current window.
type Notification struct {
	Seq    int64
	Lagged bool
}

// Subscription is a consumer's handle onto the Store's broadcast channel,
// returned by Store.Subscribe. Cancel with Close; the Store drops a closed
// subscription from its fan-out list on the next push.
type Subscription struct {
	ch     chan int64
	lagged int64 // atomic count of pushes dropped because ch was full
	closed int32
}

func newSubscription(capacity int) *Subscription {
	return &Subscription{ch: make(chan int64, capacity)}
}

// deliver is called by the Store for every push, after the entry is stored
// and the write lock released.
// It never blocks: a full channel means the subscriber is behind, which is
// recorded as lag rather than stalling the writer.
func (s *Subscription) deliver(seq int64) {
	select {
	case s.ch <- seq:
	default:
		atomic.AddInt64(&s.lagged, 1)
	}
}

// Next blocks until a notification is available or ctx is done. A lag
// signal is always reported before any buffered seqs, since a View that has
// lagged must resync its window before trusting further deltas.
func (s *Subscription) Next(ctx context.Context) (Notification, error) {
	if atomic.SwapInt64(&s.lagged, 0) > 0 {
		return Notification{Lagged: true}, nil
	}
	select {
	case seq := <-s.ch:
		return Notification{Seq: seq}, nil
	case <-ctx.Done():
		return Notification{}, ctx.Err()
	}
}

// Close marks the subscription inactive. The Store notices on the next
// push and drops it from the fan-out list.
func (s *Subscription) Close() {
	atomic.StoreInt32(&s.closed, 1)
}

func (s *Subscription) isClosed() bool {
	return atomic.LoadInt32(&s.closed) != 0
}
