// Package view implements the consumer side of the Store's broadcast
// contract (§4.6): a View tracks a last-seen sequence number and a filter,
// and turns Store notifications into batches of newly-visible entries.
package view

import (
	"context"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/triagehq/logtriage/internal/store"
)

// View is one consumer's state: an immutable filter, a last_seen_seq, and
// a subscription to the Store's broadcast channel. The zero value is not
// usable; construct with New.
type View struct {
	store  *store.Store
	filter store.Filter
	sub    *store.Subscription

	lastSeenSeq int64
	catchingUp  int32 // atomic bool

	log *log.Entry
}

// New creates a View over s with the given filter, subscribing immediately.
// last_seen_seq starts at -1, one below the first seq the Store assigns, so
// the first Backfill call yields the entire current window matching filter
// (§3, §4.6).
func New(s *store.Store, filter store.Filter) *View {
	_, sub := s.Subscribe()
	return &View{
		store:       s,
		filter:      filter,
		sub:         sub,
		lastSeenSeq: -1,
		log:         log.WithField("component", "view"),
	}
}

// Filter returns the View's immutable filter.
func (v *View) Filter() store.Filter {
	return v.filter
}

// LastSeenSeq returns the last sequence number this View has processed.
func (v *View) LastSeenSeq() int64 {
	return v.lastSeenSeq
}

// CatchingUp reports whether the View is currently re-scanning its window
// after a lag signal. The TUI polls this to drive a spinner frame.
func (v *View) CatchingUp() bool {
	return atomic.LoadInt32(&v.catchingUp) != 0
}

// Backfill drains every currently resident entry matching the View's
// filter and advances last_seen_seq to the Store's current max seq. Call
// once right after New, before relying on Poll.
func (v *View) Backfill(ctx context.Context) []store.Entry {
	_, nextSeq := v.store.Bounds()
	return v.drain(ctx, nextSeq)
}

// Poll blocks for the next Store notification (or until ctx is done) and
// returns the batch of newly-visible matching entries. On a lag signal it
// resets last_seen_seq to the Store's current min_seq - 1 and re-scans the
// entire visible window, exactly as §4.6 step 3 specifies; CatchingUp
// reports true for the duration of that rescan.
func (v *View) Poll(ctx context.Context) ([]store.Entry, error) {
	n, err := v.sub.Next(ctx)
	if err != nil {
		return nil, err
	}
	if n.Lagged {
		atomic.StoreInt32(&v.catchingUp, 1)
		defer atomic.StoreInt32(&v.catchingUp, 0)
		v.log.Debug("subscriber lagged, resetting to store min_seq")
		minSeq, nextSeq := v.store.Bounds()
		v.lastSeenSeq = minSeq - 1
		return v.drain(ctx, nextSeq), nil
	}
	if n.Seq <= v.lastSeenSeq {
		// Already observed via a prior backfill or rescan; nothing new.
		return nil, nil
	}
	return v.drain(ctx, n.Seq+1), nil
}

// Close releases the View's subscription. The Store reclaims the slot on
// its next push.
func (v *View) Close() {
	v.sub.Close()
}

func (v *View) drain(ctx context.Context, upTo int64) []store.Entry {
	cur := v.store.Range(v.lastSeenSeq+1, upTo, v.filter)
	var out []store.Entry
	for {
		e, ok := cur.Next(ctx)
		if !ok {
			break
		}
		out = append(out, e)
	}
	v.lastSeenSeq = upTo - 1
	return out
}

// FreezeFilter builds the fixed, singleton-producer filter a freeze tab
// uses (§4.6: "Freeze view's filter has a fixed, singleton producer set").
func FreezeFilter(producer string) store.Filter {
	return store.Filter{Producers: []string{producer}}
}

// CorrelateFilter builds the filter a correlate tab uses: producer
// membership is ignored entirely, constrained only on one (key, value)
// field pair (§4.6).
func CorrelateFilter(key, value string) store.Filter {
	return store.Filter{FieldName: key, FieldVal: value}
}
