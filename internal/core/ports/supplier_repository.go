package ports

import (
	"context"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for supplier
// aggregates. Suppliers are read-mostly: the workflow consults their minimum
// order value, fee, and delivery window when opening and driving pools.
type SupplierRepository interface {
	// Add persists a new supplier aggregate to storage.
	Add(ctx context.Context, aggregate *supplier.Supplier) error

	// Update persists changes to an existing supplier aggregate.
	Update(ctx context.Context, aggregate *supplier.Supplier) error

	// Get retrieves a supplier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)

	// GetAll retrieves every registered supplier.
	GetAll(ctx context.Context) ([]*supplier.Supplier, error)
}
