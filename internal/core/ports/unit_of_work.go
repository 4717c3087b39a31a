package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Every multi-aggregate invariant in the workflow (pool transition plus
// member cascade, ledger entry plus balance cache, transfer pairs) is
// enforced by writing both sides inside one UnitOfWork.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a CustomerRepository bound to the current
	// transaction.
	CustomerRepository() CustomerRepository

	// SupplierRepository returns a SupplierRepository bound to the current
	// transaction.
	SupplierRepository() SupplierRepository

	// CustomOrderRepository returns a CustomOrderRepository bound to the
	// current transaction.
	CustomOrderRepository() CustomOrderRepository

	// CollectiveOrderRepository returns a CollectiveOrderRepository bound to
	// the current transaction.
	CollectiveOrderRepository() CollectiveOrderRepository

	// CreditRepository returns a CreditRepository bound to the current
	// transaction.
	CreditRepository() CreditRepository
}
