// Package ingest holds the external-collaborator producers named in
// spec.md §1 as out of core scope but required for a runnable program:
// one Source implementation per feed kind, each normalising raw lines and
// calling Store.Push. None of this package's correctness is covered by the
// spec's invariants; it exists to give the core something to feed.
package ingest

import (
	"context"

	"github.com/triagehq/logtriage/internal/store"
)

// Source is a single producer task: one goroutine per active Source pushes
// normalised entries into a Store until ctx is cancelled (§5: "one task
// per active ingestor").
type Source interface {
	// Run blocks, pushing entries into s, until ctx is cancelled or the
	// underlying transport is exhausted. A returned error other than
	// context.Canceled is logged by the caller and does not crash the
	// process; ingestors are expected to be individually restartable.
	Run(ctx context.Context, s *store.Store) error
}
