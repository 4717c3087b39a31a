// Package kernel contains shared value objects used across all domain
// aggregates of the group-buying core.
//
// The package provides:
//   - UUID: validated unique identifier wrapping github.com/google/uuid
//   - Money: non-negative decimal amount with two-decimal semantics,
//     wrapping github.com/shopspring/decimal
//
// Both types are immutable value objects: once constructed they cannot be
// changed, and all operations return new values. They are safe for
// concurrent use.
package kernel
