package tui

import (
	"testing"

	termbox "github.com/nsf/termbox-go"

	"github.com/triagehq/logtriage/internal/store"
	"github.com/triagehq/logtriage/internal/view"
)

func TestTrimKeepsOnlyMaxRows(t *testing.T) {
	d := &Dashboard{MaxRows: 3}
	d.rows = []store.Entry{{Seq: 1}, {Seq: 2}, {Seq: 3}, {Seq: 4}, {Seq: 5}}
	d.trim()
	if len(d.rows) != 3 {
		t.Fatalf("got %d rows; want 3", len(d.rows))
	}
	if d.rows[0].Seq != 3 || d.rows[2].Seq != 5 {
		t.Fatalf("trim kept the wrong rows: %+v", d.rows)
	}
}

func TestTrimIsNoopUnderLimit(t *testing.T) {
	d := &Dashboard{MaxRows: 10}
	d.rows = []store.Entry{{Seq: 1}, {Seq: 2}}
	d.trim()
	if len(d.rows) != 2 {
		t.Fatalf("got %d rows; want unchanged 2", len(d.rows))
	}
}

func TestLevelColorMapsSeverity(t *testing.T) {
	cases := []struct {
		entry store.Entry
		want  termbox.Attribute
	}{
		{store.Entry{HasLevel: false}, termbox.ColorDefault},
		{store.Entry{HasLevel: true, Level: store.Info}, termbox.ColorDefault},
		{store.Entry{HasLevel: true, Level: store.Warn}, termbox.ColorYellow},
		{store.Entry{HasLevel: true, Level: store.Error}, termbox.ColorRed},
		{store.Entry{HasLevel: true, Level: store.Fatal}, termbox.ColorRed},
	}
	for _, c := range cases {
		if got := levelColor(c.entry); got != c.want {
			t.Fatalf("levelColor(%+v) = %v; want %v", c.entry, got, c.want)
		}
	}
}

func TestNewDashboardDefaults(t *testing.T) {
	s := store.New(10, 4)
	v := view.New(s, store.Filter{})
	d := NewDashboard(v)
	if d.RefreshRate <= 0 {
		t.Fatal("RefreshRate should default to a positive duration")
	}
	if d.MaxRows <= 0 {
		t.Fatal("MaxRows should default to a positive count")
	}
	if len(d.spin) == 0 {
		t.Fatal("spin charset should be non-empty")
	}
}
