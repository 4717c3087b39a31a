package ports

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/kernel"
)

// CreditRepository defines the persistence contract for ledger entries.
// Entries are append-mostly: Add creates them, Update only ever changes
// status and usage metadata.
type CreditRepository interface {
	// Add persists a new ledger entry.
	Add(ctx context.Context, aggregate *credit.Transaction) error

	// Update persists a status transition on an existing entry.
	Update(ctx context.Context, aggregate *credit.Transaction) error

	// Get retrieves a ledger entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*credit.Transaction, error)

	// GetAllByCustomer retrieves the customer's full ledger, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*credit.Transaction, error)

	// GetAllActiveByCustomer retrieves the customer's Active entries. The
	// Ledger service replays these to derive the authoritative balance.
	GetAllActiveByCustomer(ctx context.Context, customerID kernel.UUID) ([]*credit.Transaction, error)

	// GetAllOverdue retrieves Active entries whose expiry has passed. Used
	// by the expiration sweep.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*credit.Transaction, error)
}
