package errs_test

import (
	"errors"
	"testing"

	"groupbuy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "123")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "123", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 15, 1, 10)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 15, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 15 is quantity, min value is 1, max value is 10", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("rating", -5, 1, 5, cause)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is rating, min value is 1, max value is 5 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("description")

		assert.Equal(t, "description", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: description", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("description", cause)

		assert.Equal(t, "description", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: description (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateTransitionError(t *testing.T) {
	t.Run("NewInvalidStateTransitionError", func(t *testing.T) {
		err := errs.NewInvalidStateTransitionError("CustomOrder", "Delivered", "cancel")

		assert.Equal(t, "CustomOrder", err.Entity)
		assert.Equal(t, "Delivered", err.FromStatus)
		assert.Equal(t, "cancel", err.Action)
		assert.Equal(t, "invalid state transition: CustomOrder cannot cancel from status Delivered", err.Error())
		assert.Equal(t, errs.ErrInvalidStateTransition, err.Unwrap())
	})
}

func TestInsufficientBalanceError(t *testing.T) {
	t.Run("NewInsufficientBalanceError", func(t *testing.T) {
		err := errs.NewInsufficientBalanceError("50.00", "60.00")

		assert.Equal(t, "50.00", err.Available)
		assert.Equal(t, "60.00", err.Requested)
		assert.Equal(t, "insufficient balance: available 50.00, requested 60.00", err.Error())
		assert.Equal(t, errs.ErrInsufficientBalance, err.Unwrap())
	})
}

func TestCreditExpiredError(t *testing.T) {
	t.Run("NewCreditExpiredError", func(t *testing.T) {
		err := errs.NewCreditExpiredError("entry-1", "2025-01-02T00:00:00Z")

		assert.Equal(t, "entry-1", err.EntryID)
		assert.Equal(t, "2025-01-02T00:00:00Z", err.ExpiredAt)
		assert.Equal(t, "credit expired: entry entry-1 expired at 2025-01-02T00:00:00Z", err.Error())
		assert.Equal(t, errs.ErrCreditExpired, err.Unwrap())
	})
}

func TestConcurrentModificationError(t *testing.T) {
	t.Run("NewConcurrentModificationError", func(t *testing.T) {
		err := errs.NewConcurrentModificationError("CollectiveOrder", "pool-7")

		assert.Equal(t, "CollectiveOrder", err.Entity)
		assert.Equal(t, "pool-7", err.ID)
		assert.Equal(t, "concurrent modification: CollectiveOrder pool-7 was modified concurrently", err.Error())
		assert.Equal(t, errs.ErrConcurrentModification, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidStateTransition)
		require.Error(t, errs.ErrInsufficientBalance)
		require.Error(t, errs.ErrCreditExpired)
		require.Error(t, errs.ErrConcurrentModification)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid state transition", errs.ErrInvalidStateTransition.Error())
		assert.Equal(t, "insufficient balance", errs.ErrInsufficientBalance.Error())
		assert.Equal(t, "credit expired", errs.ErrCreditExpired.Error())
		assert.Equal(t, "concurrent modification", errs.ErrConcurrentModification.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("customerId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 15, 1, 10)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("description")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		stateErr := errs.NewInvalidStateTransitionError("CustomOrder", "Priced", "attachToPool")
		require.ErrorIs(t, stateErr, errs.ErrInvalidStateTransition)

		balanceErr := errs.NewInsufficientBalanceError("0.00", "10.00")
		require.ErrorIs(t, balanceErr, errs.ErrInsufficientBalance)

		expiredErr := errs.NewCreditExpiredError("entry-1", "2025-01-02T00:00:00Z")
		require.ErrorIs(t, expiredErr, errs.ErrCreditExpired)

		conflictErr := errs.NewConcurrentModificationError("Customer", "c-1")
		require.ErrorIs(t, conflictErr, errs.ErrConcurrentModification)
	})
}
