package ports

import (
	"context"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
)

// CustomOrderRepository defines the persistence contract for custom order
// aggregates, including the pool-membership queries the aggregator recomputes
// currentValue from and the batch cascade that keeps member statuses in
// lockstep with their pool.
type CustomOrderRepository interface {
	// Add persists a new custom order aggregate to storage.
	Add(ctx context.Context, aggregate *customorder.CustomOrder) error

	// Update persists changes to an existing custom order aggregate using
	// the version read at load time. Fails with a
	// ConcurrentModificationError when another writer has moved the version.
	Update(ctx context.Context, aggregate *customorder.CustomOrder) error

	// Get retrieves a custom order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error)

	// GetAllByPool retrieves every order currently attached to the pool.
	GetAllByPool(ctx context.Context, poolID kernel.UUID) ([]*customorder.CustomOrder, error)

	// GetAllConfirmedBySupplier retrieves confirmed, unpooled orders for a
	// supplier, oldest first. Used to fill a freshly opened pool.
	GetAllConfirmedBySupplier(ctx context.Context, supplierID kernel.UUID) ([]*customorder.CustomOrder, error)

	// UpdateStatusForPool rewrites the status of every order attached to
	// the pool in one statement, atomically with the pool's own transition.
	UpdateStatusForPool(ctx context.Context, poolID kernel.UUID, status customorder.Status) error

	// DetachAllFromPool clears the pool reference of every member order and
	// reverts them to Confirmed. Used when a pool is cancelled.
	DetachAllFromPool(ctx context.Context, poolID kernel.UUID) error
}
