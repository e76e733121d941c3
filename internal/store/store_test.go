package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-test/deep"
)

func mustEntry(msg string) Entry {
	return Entry{Time: time.Now(), Message: msg}
}

func TestEvictionOldestOnly(t *testing.T) {
	s := New(3, 4)
	for _, m := range []string{"a", "b", "c", "d"} {
		s.Push(mustEntry(m))
	}

	if _, ok := s.Get(0); ok {
		t.Fatalf("seq 0 should have been evicted")
	}
	e, ok := s.Get(3)
	if !ok || e.Message != "d" {
		t.Fatalf("seq 3 = %+v, %v; want d entry", e, ok)
	}
	min, next := s.Bounds()
	if min != 1 || next != 4 {
		t.Fatalf("bounds = (%d,%d); want (1,4)", min, next)
	}
}

func TestGetReturnsEntryUnchanged(t *testing.T) {
	s := New(10, 4)
	want := Entry{
		Time:     time.Now(),
		Level:    Warn,
		HasLevel: true,
		Feed:     Docker,
		Producer: "web-1",
		Message:  "disk nearly full",
		Fields:   []Field{{Name: "pod", Value: "web-1"}},
	}
	seq := s.Push(want)
	want.Seq = seq

	got, ok := s.Get(seq)
	if !ok {
		t.Fatalf("Get(%d) not found", seq)
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("Get returned a modified entry: %v", diff)
	}
}

func TestGetFutureAndEvicted(t *testing.T) {
	s := New(2, 4)
	s.Push(mustEntry("a"))
	if _, ok := s.Get(5); ok {
		t.Fatalf("future seq should not exist")
	}
	s.Push(mustEntry("b"))
	s.Push(mustEntry("c"))
	if _, ok := s.Get(0); ok {
		t.Fatalf("evicted seq should not exist")
	}
}

func TestRangeEmptyWhenFromGEQTo(t *testing.T) {
	s := New(10, 4)
	for i := 0; i < 5; i++ {
		s.Push(mustEntry(fmt.Sprintf("m%d", i)))
	}
	c := s.Range(3, 3, Filter{})
	if _, ok := c.Next(context.Background()); ok {
		t.Fatalf("range(from==to) should yield nothing")
	}
	c = s.Range(4, 2, Filter{})
	if _, ok := c.Next(context.Background()); ok {
		t.Fatalf("range(from>to) should yield nothing")
	}
}

func TestRangeFilterAndOrder(t *testing.T) {
	s := New(10, 4)
	s.Push(Entry{Message: "login ok", Producer: "web"})
	s.Push(Entry{Message: "login fail", Producer: "api"})
	s.Push(Entry{Message: "logout ok", Producer: "web"})

	c := s.Range(0, 10, Filter{Producers: []string{"web"}})
	var got []int64
	for {
		e, ok := c.Next(context.Background())
		if !ok {
			break
		}
		got = append(got, e.Seq)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("got %v; want [0 2]", got)
	}
}

func TestLatestOldestFirst(t *testing.T) {
	s := New(10, 4)
	for i := 0; i < 5; i++ {
		s.Push(mustEntry(fmt.Sprintf("m%d", i)))
	}
	got := s.Latest(3, Filter{})
	if len(got) != 3 {
		t.Fatalf("len = %d; want 3", len(got))
	}
	if got[0].Message != "m2" || got[2].Message != "m4" {
		t.Fatalf("got %v; want oldest-first m2..m4", got)
	}
}

func TestProducers(t *testing.T) {
	s := New(10, 4)
	s.Push(Entry{Producer: "a"})
	s.Push(Entry{Producer: "b"})
	s.Push(Entry{Producer: "a"})

	prods := s.Producers()
	if len(prods) != 2 {
		t.Fatalf("producers = %v; want 2 distinct", prods)
	}
}

func TestSubscribeDeliversInOrder(t *testing.T) {
	s := New(100, 16)
	_, sub := s.Subscribe()

	for i := 0; i < 5; i++ {
		s.Push(mustEntry(fmt.Sprintf("m%d", i)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for want := int64(0); want < 5; want++ {
		n, err := sub.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if n.Lagged {
			t.Fatalf("unexpected lag signal")
		}
		if n.Seq != want {
			t.Fatalf("seq = %d; want %d", n.Seq, want)
		}
	}
}

func TestSubscribeLagSignal(t *testing.T) {
	s := New(1000, 4)
	_, sub := s.Subscribe()

	for i := 0; i < 20; i++ {
		s.Push(mustEntry(fmt.Sprintf("m%d", i)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	n, err := sub.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !n.Lagged {
		t.Fatalf("expected a lag signal after overflowing a 4-capacity channel with 20 pushes")
	}

	// Recovery: reset to the store's current window and rescan.
	min, next := s.Bounds()
	c := s.Range(min, next, Filter{})
	count := 0
	for {
		if _, ok := c.Next(ctx); !ok {
			break
		}
		count++
	}
	if count != 20 {
		t.Fatalf("post-lag rescan found %d entries; want 20", count)
	}
}

func TestConcurrentPushAndRead(t *testing.T) {
	s := New(1000, 64)
	_, sub := s.Subscribe()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.Push(mustEntry(fmt.Sprintf("m%d", i)))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seen := 0
	for seen < 500 {
		n, err := sub.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if n.Lagged {
			// Recovery rescans the window up to nextSeq, so every seq below
			// it counts as seen; dropped seqs are never re-notified.
			_, next := s.Bounds()
			seen = int(next)
			continue
		}
		// A notified seq must be observable: it has either not yet been
		// evicted, or has — both are acceptable, but it must never
		// resolve to a different entry's data.
		if e, ok := s.Get(n.Seq); ok && e.Seq != n.Seq {
			t.Fatalf("get(%d) returned mismatched seq %d", n.Seq, e.Seq)
		}
		seen++
	}
	wg.Wait()
}
