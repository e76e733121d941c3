package query

import (
	"context"
	"testing"
	"time"

	"github.com/go-test/deep"

	"github.com/triagehq/logtriage/internal/store"
)

func push(s *store.Store, producer, message string) int64 {
	return s.Push(store.Entry{
		Time:     time.Now(),
		Producer: producer,
		Message:  message,
	})
}

func TestExecuteGreedZeroIsLiteralSubstring(t *testing.T) {
	s := store.New(100, 16)
	push(s, "web", "timeout")
	push(s, "web", "time out")
	push(s, "web", "TIMEOUT reached")

	got, err := Execute(context.Background(), s, "timeout", 0, store.Filter{}, DefaultWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Execute(\"timeout\",0) = %v; want 2 matches", got)
	}
}

func TestExecuteAndAcrossTokens(t *testing.T) {
	s := store.New(100, 16)
	push(s, "web", "auth failed for user")
	push(s, "web", "auth succeeded for user")
	push(s, "web", "database failed to connect")

	got, err := Execute(context.Background(), s, "auth failed", 0, store.Filter{}, DefaultWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Seq != 0 {
		t.Fatalf("Execute(\"auth failed\",0) = %v; want only seq 0", got)
	}
}

func TestExecuteFieldConstraint(t *testing.T) {
	s := store.New(100, 16)
	s.Push(store.Entry{Time: time.Now(), Producer: "web", Message: "boom", Fields: []store.Field{{Name: "pod", Value: "web-1"}}})
	s.Push(store.Entry{Time: time.Now(), Producer: "web", Message: "boom", Fields: []store.Field{{Name: "pod", Value: "web-2"}}})

	got, err := Execute(context.Background(), s, "pod:web-1", 0, store.Filter{}, DefaultWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Seq != 0 {
		t.Fatalf("Execute(\"pod:web-1\") = %v; want only seq 0", got)
	}
}

func TestExecuteWithinFiltersByAge(t *testing.T) {
	s := store.New(100, 16)
	s.Push(store.Entry{Time: time.Now().Add(-time.Hour), Producer: "web", Message: "stale error"})
	s.Push(store.Entry{Time: time.Now(), Producer: "web", Message: "fresh error"})

	got, err := Execute(context.Background(), s, "error within:5m", 0, store.Filter{}, DefaultWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Seq != 1 {
		t.Fatalf("Execute with within:5m = %v; want only the fresh entry", got)
	}
}

func TestExecuteRankOrdersByScoreThenSeq(t *testing.T) {
	s := store.New(100, 16)
	push(s, "web", "auth auth auth")
	push(s, "web", "auth")

	got, err := Execute(context.Background(), s, "auth", 0, store.Filter{}, DefaultWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var gotSeqs []int64
	for _, r := range got {
		gotSeqs = append(gotSeqs, r.Seq)
	}
	// Both entries have a single distinct matched term ("auth"), so density
	// differs only through message length; recency favours the later seq.
	want := []int64{1, 0}
	if diff := deep.Equal(gotSeqs, want); diff != nil {
		t.Fatalf("ranked seq order diff: %v", diff)
	}
}

func TestExecuteMalformedQueryPropagates(t *testing.T) {
	s := store.New(100, 16)
	if _, err := Execute(context.Background(), s, `msg:"unterminated`, 0, store.Filter{}, DefaultWeights); err == nil {
		t.Fatal("expected malformed query error to propagate")
	}
}
