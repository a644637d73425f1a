// Package ledger tracks which source files have already produced a
// terminal outcome, so re-runs never upsert the same card twice. All
// implementations share at-most-once semantics per source file id:
// RecordOutcome is an insert-if-absent, and only the caller that observes
// inserted=true may proceed to the downstream upsert.
package ledger

import (
	"context"

	"github.com/tunde-ajayi/cardscan/internal/entity"
)

// Ledger is the idempotency boundary shared across concurrent pipeline runs.
type Ledger interface {
	// HasProcessed reports whether a terminal outcome was already recorded
	// for the source file.
	HasProcessed(ctx context.Context, sourceFileID string) (bool, error)

	// RecordOutcome appends the terminal outcome for a source file.
	// Returns inserted=false (without error) when another run recorded an
	// outcome first; entries are never overwritten.
	RecordOutcome(ctx context.Context, e entity.ProcessedFileEntry) (inserted bool, err error)

	Close() error
}
