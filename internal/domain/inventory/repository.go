package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LedgerRepository is the append-only store of stock movements. Entries are
// only ever inserted or deleted by reversal; there is no update.
type LedgerRepository interface {
	// Append inserts new ledger entries.
	Append(ctx context.Context, entries ...*LedgerEntry) error
	// FindByResource returns the entries keyed to a source document.
	FindByResource(ctx context.Context, resourceType ResourceType, resourceID uuid.UUID) ([]LedgerEntry, error)
	// DeleteByResource removes all entries keyed to a source document and
	// returns how many were removed. Removing zero entries is not an error.
	DeleteByResource(ctx context.Context, resourceType ResourceType, resourceID uuid.UUID) (int64, error)
	// FindByComponent returns a component's entries up to asOf, ordered by
	// (stock_date, created_at) so a running balance can be folded over them.
	FindByComponent(ctx context.Context, componentID uuid.UUID, asOf time.Time) ([]LedgerEntry, error)
}
