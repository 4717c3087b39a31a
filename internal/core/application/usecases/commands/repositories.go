// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"groupbuy/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// CustomOrderRepoFactory provides access to the custom order repository within a transaction.
	CustomOrderRepoFactory interface {
		CustomOrderRepository() ports.CustomOrderRepository
	}

	// CollectiveOrderRepoFactory provides access to the collective order repository within a transaction.
	CollectiveOrderRepoFactory interface {
		CollectiveOrderRepository() ports.CollectiveOrderRepository
	}

	// CreditRepoFactory provides access to the ledger entry repository within a transaction.
	CreditRepoFactory interface {
		CreditRepository() ports.CreditRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// SupplierUoW manages transactions for supplier-only operations.
	SupplierUoW interface {
		TxManager
		SupplierRepoFactory
	}

	// SupplierUoWFactory creates new supplier unit of work instances.
	SupplierUoWFactory interface {
		Create() SupplierUoW
	}

	// CustomOrderUoW manages transactions for custom-order-only operations.
	// Used when commands only modify order aggregates.
	CustomOrderUoW interface {
		TxManager
		CustomOrderRepoFactory
	}

	// CustomOrderUoWFactory creates new custom order unit of work instances.
	CustomOrderUoWFactory interface {
		Create() CustomOrderUoW
	}

	// AnalysisUoW manages transactions for order pricing, which reads the
	// supplier while writing the order.
	AnalysisUoW interface {
		TxManager
		CustomOrderRepoFactory
		SupplierRepoFactory
	}

	// AnalysisUoWFactory creates new analysis unit of work instances.
	AnalysisUoWFactory interface {
		Create() AnalysisUoW
	}

	// PoolUoW manages transactions for pool-only operations.
	PoolUoW interface {
		TxManager
		CollectiveOrderRepoFactory
	}

	// PoolUoWFactory creates new pool unit of work instances.
	PoolUoWFactory interface {
		Create() PoolUoW
	}

	// PoolMembersUoW manages transactions spanning a pool and its member
	// orders. Used by membership changes and by the status cascades that
	// rewrite members in lockstep with the pool.
	PoolMembersUoW interface {
		TxManager
		CollectiveOrderRepoFactory
		CustomOrderRepoFactory
	}

	// PoolMembersUoWFactory creates new pool-with-members unit of work instances.
	PoolMembersUoWFactory interface {
		Create() PoolMembersUoW
	}

	// OpenPoolUoW manages transactions for opening a pool, which reads the
	// supplier for its minimum order value and sweeps in confirmed orders.
	OpenPoolUoW interface {
		TxManager
		SupplierRepoFactory
		CollectiveOrderRepoFactory
		CustomOrderRepoFactory
	}

	// OpenPoolUoWFactory creates new pool-opening unit of work instances.
	OpenPoolUoWFactory interface {
		Create() OpenPoolUoW
	}

	// LedgerUoW manages transactions spanning a customer and their ledger
	// entries. Every balance mutation persists both in one transaction.
	LedgerUoW interface {
		TxManager
		CustomerRepoFactory
		CreditRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// UoW manages transactions across every aggregate. Used by commands that
	// touch the order workflow and the ledger together, such as cancelling a
	// pooled order whose charge must be refunded.
	UoW interface {
		TxManager
		CustomerRepoFactory
		SupplierRepoFactory
		CustomOrderRepoFactory
		CollectiveOrderRepoFactory
		CreditRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
