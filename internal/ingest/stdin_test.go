package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/triagehq/logtriage/internal/store"
)

func TestStdinSourcePushesEachLine(t *testing.T) {
	s := store.New(16, 4)
	src := &StdinSource{Reader: strings.NewReader("first line\n[ERROR] second line\n")}

	if err := src.Run(context.Background(), s); err != nil {
		t.Fatalf("Run() = %v; want nil at EOF", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	minSeq, nextSeq := s.Bounds()
	cur := s.Range(minSeq, nextSeq, store.Filter{})

	var got []store.Entry
	for {
		e, ok := cur.Next(ctx)
		if !ok {
			break
		}
		got = append(got, e)
	}

	if len(got) != 2 {
		t.Fatalf("got %d entries; want 2", len(got))
	}
	if got[0].Message != "first line" || got[0].HasLevel {
		t.Fatalf("entry 0 = %+v", got[0])
	}
	if got[1].Message != "second line" || got[1].Level != store.Error {
		t.Fatalf("entry 1 = %+v", got[1])
	}
	if got[0].Producer != "stdin" {
		t.Fatalf("Producer = %q; want default \"stdin\"", got[0].Producer)
	}
}

func TestStdinSourceRespectsProducerOverride(t *testing.T) {
	s := store.New(16, 4)
	src := &StdinSource{Reader: strings.NewReader("hello\n"), Producer: "sidecar"}

	if err := src.Run(context.Background(), s); err != nil {
		t.Fatalf("Run() = %v; want nil", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	minSeq, nextSeq := s.Bounds()
	cur := s.Range(minSeq, nextSeq, store.Filter{})
	e, ok := cur.Next(ctx)
	if !ok {
		t.Fatal("expected one entry")
	}
	if e.Producer != "sidecar" {
		t.Fatalf("Producer = %q; want %q", e.Producer, "sidecar")
	}
}
