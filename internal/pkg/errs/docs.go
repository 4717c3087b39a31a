// Package errs provides standardized error types for the group-buying core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//   - InvalidStateTransitionError: for operations illegal in the current status
//   - InsufficientBalanceError: for debits exceeding available credit
//   - CreditExpiredError: for use of a lapsed ledger entry
//   - ConcurrentModificationError: for optimistic-lock conflicts
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInsufficientBalance)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All errors in this package describe recoverable validation or invariant
// failures; unexpected storage failures are propagated opaquely and are not
// represented here.
package errs
