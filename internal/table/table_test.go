package table

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/triagehq/logtriage/internal/store"
)

func TestRenderIncludesHeaderAndMessage(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, []store.Entry{
		{
			Seq:      1,
			Time:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Level:    store.Error,
			HasLevel: true,
			Feed:     store.Docker,
			Producer: "web-1",
			Message:  "connection refused",
		},
	})
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want header + 1 row:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "SEQ") || !strings.Contains(lines[0], "MESSAGE") {
		t.Fatalf("header row = %q; want column names", lines[0])
	}
	if !strings.Contains(lines[1], "ERROR") || !strings.Contains(lines[1], "connection refused") {
		t.Fatalf("data row = %q; want level and message", lines[1])
	}
}

func TestRenderWithNoEntriesYieldsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines; want header only:\n%s", len(lines), buf.String())
	}
}

func TestRenderOmitsLevelWhenAbsent(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, []store.Entry{
		{Seq: 2, Producer: "app.log", Feed: store.File, Message: "plain line"},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if strings.Contains(lines[1], "ERROR") || strings.Contains(lines[1], "INFO") {
		t.Fatalf("data row = %q; want no level token rendered", lines[1])
	}
}
