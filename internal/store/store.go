package store

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// DefaultBroadcastCapacity is the bounded size of a subscriber's
// notification channel when none is configured explicitly (§6).
const DefaultBroadcastCapacity = 1024

// Store is a bounded, concurrent, sequence-numbered ring buffer of Entry
// values. It is the single source of truth: the only mutator is Push, and
// every Push publishes the assigned seq to all live subscriptions after the
// entry is visible to readers. The zero value is not usable; construct
// with New.
type Store struct {
	mu sync.RWMutex

	entries  []Entry
	head     int   // index of the oldest resident entry
	count    int   // number of resident entries
	nextSeq  int64 // next seq to assign, never decreases or repeats

	broadcastCap int
	subs         []*Subscription

	log *log.Entry
}

// New creates a Store with the given capacity (must be positive) and
// broadcast channel capacity for new subscriptions.
func New(capacity, broadcastCapacity int) *Store {
	if capacity <= 0 {
		panic("store: capacity must be positive")
	}
	if broadcastCapacity <= 0 {
		broadcastCapacity = DefaultBroadcastCapacity
	}
	return &Store{
		entries:      make([]Entry, capacity),
		broadcastCap: broadcastCapacity,
		log:          log.WithField("component", "store"),
	}
}

// Capacity returns the fixed ring size.
func (s *Store) Capacity() int {
	return len(s.entries)
}

// Len returns the number of currently resident entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

func (s *Store) minSeqLocked() int64 {
	return s.nextSeq - int64(s.count)
}

// Push assigns the next sequence number to entry, appends it, evicting the
// oldest resident entry if at capacity, and publishes the new seq to every
// live subscription. It is infallible once entry is constructed and never
// blocks on a slow subscriber.
func (s *Store) Push(entry Entry) int64 {
	s.mu.Lock()
	seq := s.nextSeq
	s.nextSeq++
	entry.Seq = seq

	ringCap := len(s.entries)
	idx := (s.head + s.count) % ringCap
	if s.count == ringCap {
		s.head = (s.head + 1) % ringCap
	} else {
		s.count++
	}
	s.entries[idx] = entry

	subs := s.subs
	s.mu.Unlock()

	live := make([]*Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.isClosed() {
			continue
		}
		sub.deliver(seq)
		live = append(live, sub)
	}
	if len(live) != len(subs) {
		s.mu.Lock()
		s.subs = live
		s.mu.Unlock()
	}

	return seq
}

// Get returns the entry at seq, or false if it has been evicted (seq below
// the resident window's minimum) or has not been pushed yet (seq at or
// beyond the next assigned seq).
func (s *Store) Get(seq int64) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(seq)
}

func (s *Store) getLocked(seq int64) (Entry, bool) {
	min := s.minSeqLocked()
	if seq < min || seq >= s.nextSeq {
		return Entry{}, false
	}
	idx := (s.head + int(seq-min)) % len(s.entries)
	return s.entries[idx].Clone(), true
}

// Producers returns the set of distinct producer identifiers present in the
// current resident window.
func (s *Store) Producers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for i := 0; i < s.count; i++ {
		idx := (s.head + i) % len(s.entries)
		p := s.entries[idx].Producer
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// Bounds returns the current [minSeq, nextSeq) resident window.
func (s *Store) Bounds() (minSeq, nextSeq int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minSeqLocked(), s.nextSeq
}

// Range returns a Cursor yielding, in increasing sequence order, every
// resident entry in [max(from, minSeq), min(to, nextSeq)) matching filter.
// Entries evicted during iteration are skipped silently.
func (s *Store) Range(from, to int64, filter Filter) *Cursor {
	return &Cursor{s: s, cur: from, to: to, filter: filter}
}

// Latest returns at most n most-recent resident entries matching filter,
// oldest first within the result.
func (s *Store) Latest(n int, filter Filter) []Entry {
	if n <= 0 {
		return nil
	}
	s.mu.RLock()
	minSeq, nextSeq := s.minSeqLocked(), s.nextSeq
	s.mu.RUnlock()

	out := make([]Entry, 0, n)
	for seq := nextSeq - 1; seq >= minSeq && len(out) < n; seq-- {
		e, ok := s.Get(seq)
		if !ok {
			continue
		}
		if filter.Match(&e) {
			out = append(out, e)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Subscribe registers a new Subscription and returns the Store's minSeq at
// the moment of subscription, so the caller can backfill
// [minSeqAtSubscribe, nextSeq) before relying on the broadcast stream.
func (s *Store) Subscribe() (minSeqAtSubscribe int64, sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub = newSubscription(s.broadcastCap)
	s.subs = append(s.subs, sub)
	return s.minSeqLocked(), sub
}

// Cursor iterates a Store's resident window matching a Filter. It holds the
// Store's read lock only while materialising each yielded entry.
type Cursor struct {
	s      *Store
	cur    int64
	to     int64
	filter Filter
}

// Next advances the cursor and returns the next matching entry, or false
// when the cursor is exhausted or ctx is done.
func (c *Cursor) Next(ctx context.Context) (Entry, bool) {
	for {
		select {
		case <-ctx.Done():
			return Entry{}, false
		default:
		}

		c.s.mu.RLock()
		min, next := c.s.minSeqLocked(), c.s.nextSeq
		if c.cur < min {
			c.cur = min
		}
		limit := c.to
		if next < limit {
			limit = next
		}
		if c.cur >= limit {
			c.s.mu.RUnlock()
			return Entry{}, false
		}
		e, ok := c.s.getLocked(c.cur)
		c.s.mu.RUnlock()

		c.cur++
		if !ok {
			continue
		}
		if c.filter.Match(&e) {
			return e, true
		}
	}
}
