package ports

import (
	"context"

	"groupbuy/internal/core/domain/model/customer"
	"groupbuy/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates. Updates are version-checked: the customer's ledger is a single
// unit of concurrency, so a stale write fails with a
// ConcurrentModificationError instead of silently losing a balance change.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate using the
	// version read at load time. Fails with a ConcurrentModificationError
	// when another writer has moved the version.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
