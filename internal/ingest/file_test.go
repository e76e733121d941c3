package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/triagehq/logtriage/internal/store"
)

func waitForLen(t *testing.T, s *store.Store, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Len() >= n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("store never reached %d entries, has %d", n, s.Len())
}

func TestFileSourceTailsAppendedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("first line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := store.New(16, 4)
	src := &FileSource{Path: path}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- src.Run(ctx, s) }()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("ERROR something broke\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	waitForLen(t, s, 1)

	_, nextSeq := s.Bounds()
	entry, ok := s.Get(nextSeq - 1)
	if !ok {
		t.Fatalf("expected an entry at seq %d", nextSeq-1)
	}
	if entry.Message != "something broke" {
		t.Errorf("Message = %q, want %q", entry.Message, "something broke")
	}
	if !entry.HasLevel || entry.Level != store.Error {
		t.Errorf("expected level Error extracted, got %+v", entry)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestFileSourceHandlesTruncation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("line one\nline two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := store.New(16, 4)
	src := &FileSource{Path: path}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go src.Run(ctx, s)

	// Give the tail loop a moment to open at EOF before truncating.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("line three\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitForLen(t, s, 1)

	_, nextSeq := s.Bounds()
	entry, _ := s.Get(nextSeq - 1)
	if entry.Message != "line three" {
		t.Errorf("Message = %q, want %q", entry.Message, "line three")
	}
}
