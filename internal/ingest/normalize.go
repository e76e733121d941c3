package ingest

import (
	"strings"
	"time"

	"github.com/triagehq/logtriage/internal/store"
)

// levelTokens maps a case-insensitive level token found near the start of
// a raw line to the Level it denotes. Checked longest-first so "warning"
// is not shadowed by a hypothetical "warn" prefix collision.
var levelTokens = []struct {
	token string
	level store.Level
}{
	{"fatal", store.Fatal},
	{"panic", store.Fatal},
	{"error", store.Error},
	{"err", store.Error},
	{"warning", store.Warn},
	{"warn", store.Warn},
	{"info", store.Info},
	{"debug", store.Debug},
	{"trace", store.Trace},
}

// timestampLayouts are tried in order against a line's leading tokens.
// twoWord layouts consume the first two whitespace-separated fields (a
// date and a time split by a space); the rest consume only the first.
var timestampLayouts = []struct {
	layout   string
	twoWord  bool
	timeOnly bool // layout carries no date; combine with the caller's "at" date
}{
	{time.RFC3339Nano, false, false},
	{time.RFC3339, false, false},
	{"2006-01-02T15:04:05", false, false},
	{"2006-01-02 15:04:05", true, false},
	{time.Kitchen, false, true},
	{"15:04:05", false, true},
}

// Normalize turns a raw line plus its known feed metadata into a store
// Entry: it strips a leading timestamp prefix (RFC3339 or a bare
// time.Kitchen-ish clock time) and a leading bracketed or bare level
// token, in that order, leaving whatever remains as the message. A line
// with neither falls back to the full line as the message. Normalising a
// line twice is idempotent: the second pass finds nothing left to strip
// because the first pass already removed it.
func Normalize(feed store.FeedKind, producer string, raw string, at time.Time, fields []store.Field) store.Entry {
	message := strings.TrimRight(raw, "\r\n")

	ts, hasTimestamp, rest := extractTimestamp(message, at)
	if hasTimestamp {
		message = rest
		at = ts
	}

	level, hasLevel, rest := extractLevel(message)
	if hasLevel {
		message = rest
	}

	return store.Entry{
		Time:     at,
		Level:    level,
		HasLevel: hasLevel,
		Feed:     feed,
		Producer: producer,
		Message:  message,
		Fields:   fields,
	}
}

// extractTimestamp looks for a timestamp as the leading one or two fields
// of line and, if one parses, returns the timestamp it denotes (combined
// with fallback's date when the layout carries no date of its own) plus
// the remainder of the line with the timestamp and its separator stripped.
func extractTimestamp(line string, fallback time.Time) (time.Time, bool, string) {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return time.Time{}, false, line
	}

	for _, tl := range timestampLayouts {
		var candidate string
		if tl.twoWord {
			if len(fields) < 2 {
				continue
			}
			candidate = fields[0] + " " + fields[1]
		} else {
			candidate = fields[0]
		}

		parsed, err := time.Parse(tl.layout, candidate)
		if err != nil {
			continue
		}

		ts := parsed
		if tl.timeOnly {
			ts = time.Date(fallback.Year(), fallback.Month(), fallback.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(),
				fallback.Location())
		}

		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, candidate))
		rest = strings.TrimPrefix(rest, ":")
		rest = strings.TrimSpace(rest)
		return ts, true, rest
	}

	return time.Time{}, false, line
}

// extractLevel looks for a level token as the first word of line, optionally
// wrapped in brackets (e.g. "[ERROR] boom" or "ERROR: boom"), and returns the
// remainder of the line with that token and its separator stripped.
func extractLevel(line string) (store.Level, bool, string) {
	trimmed := strings.TrimSpace(line)
	word := trimmed
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		word = trimmed[:i]
	}
	bracketed := false
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.IndexByte(trimmed, ']'); end > 0 {
			word = trimmed[1:end]
			bracketed = true
		}
	}
	word = strings.TrimRight(word, ":")

	for _, lt := range levelTokens {
		if !strings.EqualFold(word, lt.token) {
			continue
		}
		rest := trimmed
		if bracketed {
			rest = strings.TrimSpace(trimmed[strings.IndexByte(trimmed, ']')+1:])
		} else {
			rest = strings.TrimSpace(trimmed[len(word):])
			rest = strings.TrimPrefix(rest, ":")
			rest = strings.TrimSpace(rest)
		}
		return lt.level, true, rest
	}
	return 0, false, line
}
