// Package tui renders a live-scrolling View as a termbox dashboard, the
// same render-loop shape as the teacher's cli/cmd/top.go: termbox.Init
// once, a ticker-driven redraw, and a separate goroutine polling keyboard
// input for quit.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"github.com/triagehq/logtriage/internal/store"
	"github.com/triagehq/logtriage/internal/view"
)

const headerHeight = 2

var columnWidths = []int{8, 19, 5, 10, 16}

// Dashboard owns one View and renders its backlog plus live updates to
// the terminal until the user quits or ctx is cancelled.
type Dashboard struct {
	View        *view.View
	RefreshRate time.Duration // ticker period, default 16ms per SPEC_FULL.md §5
	MaxRows     int           // rows kept on screen, oldest dropped first

	rows   []store.Entry
	frame  int
	spin   []string
}

// NewDashboard builds a Dashboard with SPEC_FULL.md's default 16ms refresh
// cadence and a 200-row scrollback, using charset 9 from
// briandowns/spinner for the catching-up indicator (the same CharSets
// table the teacher indexes for its `check` command's spinner).
func NewDashboard(v *view.View) *Dashboard {
	return &Dashboard{
		View:        v,
		RefreshRate: 16 * time.Millisecond,
		MaxRows:     200,
		spin:        spinner.CharSets[9],
	}
}

// Run initializes termbox, backfills the View's current window, then
// redraws on every tick until ctx is cancelled or the user presses q /
// Ctrl-C.
func (d *Dashboard) Run(ctx context.Context) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	d.rows = d.View.Backfill(ctx)
	d.trim()

	quit := make(chan struct{})
	go d.pollInput(quit)

	ticker := time.NewTicker(d.RefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-ticker.C:
			fresh, err := d.View.Poll(ctx)
			if err != nil {
				return err
			}
			if len(fresh) > 0 {
				d.rows = append(d.rows, fresh...)
				d.trim()
			}
			d.redraw()
		}
	}
}

func (d *Dashboard) trim() {
	if len(d.rows) > d.MaxRows {
		d.rows = d.rows[len(d.rows)-d.MaxRows:]
	}
}

func (d *Dashboard) pollInput(quit chan<- struct{}) {
	for {
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}
		if ev.Ch == 'q' || ev.Key == termbox.KeyCtrlC {
			close(quit)
			return
		}
	}
}

func (d *Dashboard) redraw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	d.renderHeader()
	d.renderRows()
	termbox.Flush()
	d.frame++
}

func (d *Dashboard) renderHeader() {
	tbprint(0, 0, "(press q to quit)")
	status := ""
	if d.View.CatchingUp() {
		status = d.spin[d.frame%len(d.spin)] + " catching up"
	}
	tbprint(40, 0, status)

	headers := []string{"SEQ", "TIME", "LEVEL", "FEED", "PRODUCER"}
	x := 0
	for i, h := range headers {
		width := columnWidths[i]
		padded := fmt.Sprintf("%-"+strconv.Itoa(width)+"s ", h)
		tbprintBold(x, 1, padded)
		x += width + 1
	}
}

func (d *Dashboard) renderRows() {
	_, h := termbox.Size()
	available := h - headerHeight
	start := 0
	if len(d.rows) > available {
		start = len(d.rows) - available
	}
	for i, e := range d.rows[start:] {
		y := i + headerHeight
		color := levelColor(e)
		x := 0
		x = tbprintColumn(x, y, strconv.FormatInt(e.Seq, 10), columnWidths[0], color)
		x = tbprintColumn(x, y, e.Time.Format("15:04:05"), columnWidths[1], color)
		level := ""
		if e.HasLevel {
			level = e.Level.String()
		}
		x = tbprintColumn(x, y, level, columnWidths[2], color)
		x = tbprintColumn(x, y, e.Feed.String(), columnWidths[3], color)
		x = tbprintColumn(x, y, e.Producer, columnWidths[4], color)
		tbprintPlain(x, y, e.Message, color)
	}
}

func levelColor(e store.Entry) termbox.Attribute {
	if !e.HasLevel {
		return termbox.ColorDefault
	}
	switch e.Level {
	case store.Fatal, store.Error:
		return termbox.ColorRed
	case store.Warn:
		return termbox.ColorYellow
	default:
		return termbox.ColorDefault
	}
}

func tbprintColumn(x, y int, s string, width int, fg termbox.Attribute) int {
	padded := fmt.Sprintf("%-"+strconv.Itoa(width)+"s ", s)
	tbprintColor(x, y, padded, fg)
	return x + width + 1
}

func tbprintPlain(x, y int, s string, fg termbox.Attribute) {
	tbprintColor(x, y, s, fg)
}

func tbprintColor(x, y int, msg string, fg termbox.Attribute) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(c)
	}
}

func tbprint(x, y int, msg string) {
	tbprintColor(x, y, msg, termbox.ColorDefault)
}

func tbprintBold(x, y int, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, termbox.AttrBold, termbox.ColorDefault)
		x += runewidth.RuneWidth(c)
	}
}
