// Package table renders a slice of store entries as plain text, using the
// teacher's generic cli/table column/row engine. This is the headless /
// scriptable counterpart to internal/tui's live dashboard: a one-shot
// `logtriage query` invocation prints through here instead.
package table

import (
	"fmt"
	"io"

	"github.com/triagehq/logtriage/cli/table"
	"github.com/triagehq/logtriage/internal/store"
)

var columns = []table.Column{
	{Header: "SEQ", Width: 8},
	{Header: "TIME", Width: 19},
	{Header: "LEVEL", Width: 5},
	{Header: "FEED", Width: 10},
	{Header: "PRODUCER", Flexible: true, LeftAlign: true},
	{Header: "MESSAGE", Flexible: true, LeftAlign: true},
}

// Render writes entries to w as a fixed-width table, one row per entry in
// the order given (already ranked by the caller; this package never
// re-sorts, unlike the teacher's table.Sort field which exists for its
// own callers' alphabetic needs).
func Render(w io.Writer, entries []store.Entry) {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		level := ""
		if e.HasLevel {
			level = e.Level.String()
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.Seq),
			e.Time.Format("2006-01-02 15:04:05"),
			level,
			e.Feed.String(),
			e.Producer,
			e.Message,
		}
	}
	t := table.NewTable(columns, rows)
	t.Render(w)
}
