package ports

import (
	"context"

	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/kernel"
)

// CollectiveOrderRepository defines the persistence contract for collective
// order aggregates. Each pool is one unit of optimistic concurrency: Update
// is version-checked so two concurrent attaches cannot both observe a stale
// currentValue and silently lose one.
type CollectiveOrderRepository interface {
	// Add persists a new collective order aggregate to storage.
	Add(ctx context.Context, aggregate *collectiveorder.CollectiveOrder) error

	// Update persists changes to an existing collective order aggregate
	// using the version read at load time. Fails with a
	// ConcurrentModificationError when another writer has moved the version.
	Update(ctx context.Context, aggregate *collectiveorder.CollectiveOrder) error

	// Get retrieves a collective order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*collectiveorder.CollectiveOrder, error)

	// GetOpenBySupplier retrieves the supplier's pool currently accepting
	// members, or an ObjectNotFoundError when none is open.
	GetOpenBySupplier(ctx context.Context, supplierID kernel.UUID) (*collectiveorder.CollectiveOrder, error)

	// GetAllInPaymentWindow retrieves every pool currently collecting
	// customer payments. Used by the payment-deadline sweep.
	GetAllInPaymentWindow(ctx context.Context) ([]*collectiveorder.CollectiveOrder, error)
}
