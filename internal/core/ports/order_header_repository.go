package ports

import (
	"context"

	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/domain/model/orderhead"
)

// OrderHeaderRepository defines the persistence contract for manufacturing
// order header aggregates, keyed by their composite identity.
type OrderHeaderRepository interface {
	// Add persists a new header aggregate to storage.
	// Used by seeding and tests; production headers are created upstream.
	Add(ctx context.Context, aggregate *orderhead.Header) error

	// Update persists the mutable fields of an existing header: the printed
	// flag, last-modified date, change sequence and changed-by user. The
	// header must exist in the repository.
	Update(ctx context.Context, aggregate *orderhead.Header) error

	// Get retrieves a header by its composite key without locking it.
	Get(ctx context.Context, key kernel.OrderKey) (*orderhead.Header, error)

	// GetForUpdate retrieves a header by its composite key under an exclusive
	// row lock. Only valid inside a started unit of work; the lock is held
	// until the transaction commits or rolls back. Blocking behavior under
	// contention is the store's policy, not the caller's.
	GetForUpdate(ctx context.Context, key kernel.OrderKey) (*orderhead.Header, error)
}
