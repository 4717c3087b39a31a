// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the group-buying system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Ledger: pairs every customer balance mutation with the ledger entry
//     that explains it, including atomic transfers and credit expiration
//   - PoolAggregator: keeps collective orders and their member custom orders
//     consistent through attach, detach, cancellation, and status cascades
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
