// Package errs holds the sentinel errors shared across the core (§7).
// Only Internal is fatal; everything else is an explicit return value the
// immediate caller is expected to handle.
package errs

import (
	"errors"
	"strconv"
)

var (
	// TransientLag marks a View that fell behind the broadcast channel.
	// Recovered locally by the View; never propagated to the UI as an error.
	TransientLag = errors.New("store: subscriber lagged")

	// EntryEvicted marks a Get(seq) below the Store's min_seq. Callers
	// must treat this as "gone", not as a failure.
	EntryEvicted = errors.New("store: entry evicted")

	// MalformedQuery marks a query string the parser could not make sense
	// of (unbalanced quotes, unknown prefix syntax).
	MalformedQuery = errors.New("query: malformed")
)

// MalformedQueryError wraps MalformedQuery with the offending token so the
// UI can point at it.
type MalformedQueryError struct {
	Token string
	Err   error
}

func (e *MalformedQueryError) Error() string {
	return "query: malformed token " + strconv.Quote(e.Token) + ": " + e.Err.Error()
}

func (e *MalformedQueryError) Unwrap() error {
	return MalformedQuery
}
