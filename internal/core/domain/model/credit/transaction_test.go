package credit_test

import (
	"testing"
	"time"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func TestNewTransaction(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid pending entry with all valid parameters", func(t *testing.T) {
		amount := mustMoney(t, "150.00")
		balanceAfter := mustMoney(t, "250.00")

		tx, err := credit.NewTransaction(validID, customerID, credit.TypeRefund, amount,
			"refund for cancelled order", balanceAfter, now)

		require.NoError(t, err)
		assert.NotNil(t, tx)
		require.NoError(t, tx.Validate())
		assert.True(t, tx.ID().IsEqual(validID))
		assert.True(t, tx.CustomerID().IsEqual(customerID))
		assert.Equal(t, credit.TypeRefund, tx.Type())
		assert.True(t, tx.Amount().IsEqual(amount))
		assert.Equal(t, "refund for cancelled order", tx.Description())
		assert.Equal(t, credit.StatusPending, tx.Status())
		assert.True(t, tx.BalanceAfter().IsEqual(balanceAfter))
		assert.Equal(t, now, tx.CreatedAt())
		assert.Nil(t, tx.UsedAt())
	})

	t.Run("should apply default expiry for the type", func(t *testing.T) {
		refund, err := credit.NewTransaction(validID, customerID, credit.TypeRefund,
			mustMoney(t, "10.00"), "refund", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		require.NotNil(t, refund.ExpiresAt())
		assert.Equal(t, now.Add(365*24*time.Hour), *refund.ExpiresAt())

		bonus, err := credit.NewTransaction(validID, customerID, credit.TypeCreditBonus,
			mustMoney(t, "10.00"), "bonus", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		require.NotNil(t, bonus.ExpiresAt())
		assert.Equal(t, now.Add(183*24*time.Hour), *bonus.ExpiresAt())

		transfer, err := credit.NewTransaction(validID, customerID, credit.TypeTransfer,
			mustMoney(t, "10.00"), "transfer", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		assert.Nil(t, transfer.ExpiresAt())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		tx, err := credit.NewTransaction(invalidID, customerID, credit.TypeRefund,
			mustMoney(t, "10.00"), "refund", kernel.ZeroMoney(), now)

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unknown type", func(t *testing.T) {
		tx, err := credit.NewTransaction(validID, customerID, credit.TypeUnknown,
			mustMoney(t, "10.00"), "entry", kernel.ZeroMoney(), now)

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "transactionType is invalid")
	})

	t.Run("should fail with zero amount", func(t *testing.T) {
		tx, err := credit.NewTransaction(validID, customerID, credit.TypeRefund,
			kernel.ZeroMoney(), "refund", kernel.ZeroMoney(), now)

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "amount is invalid")
		assert.Contains(t, err.Error(), "0.00 is not greater than 0")
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		tx, err := credit.NewTransaction(validID, customerID, credit.TypeRefund,
			mustMoney(t, "10.00"), "", kernel.ZeroMoney(), now)

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "description is required")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		tx, err := credit.NewTransaction(invalidID, customerID, credit.TypeUnknown,
			kernel.ZeroMoney(), "", kernel.ZeroMoney(), now)

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "transactionType is invalid")
		assert.Contains(t, err.Error(), "amount is invalid")
		assert.Contains(t, err.Error(), "description is required")
	})
}

func TestTransaction_Validate(t *testing.T) {
	t.Run("should fail validation for nil transaction", func(t *testing.T) {
		var tx *credit.Transaction

		err := tx.Validate()

		require.Error(t, err)
		assert.Equal(t, credit.ErrTransactionIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value transaction", func(t *testing.T) {
		var tx credit.Transaction

		err := tx.Validate()

		require.Error(t, err)
		assert.Equal(t, credit.ErrTransactionIsNotConstructed, err)
	})
}

func TestTransaction_Lifecycle(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	newEntry := func(t *testing.T, txType credit.TransactionType) *credit.Transaction {
		t.Helper()
		tx, err := credit.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), txType,
			mustMoney(t, "50.00"), "entry", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		return tx
	}

	t.Run("should activate pending entry", func(t *testing.T) {
		tx := newEntry(t, credit.TypeRefund)

		err := tx.Activate()

		require.NoError(t, err)
		assert.Equal(t, credit.StatusActive, tx.Status())
	})

	t.Run("should use active entry and record usage time", func(t *testing.T) {
		tx := newEntry(t, credit.TypeRefund)
		require.NoError(t, tx.Activate())

		usedAt := now.Add(24 * time.Hour)
		err := tx.Use(usedAt)

		require.NoError(t, err)
		assert.Equal(t, credit.StatusUsed, tx.Status())
		require.NotNil(t, tx.UsedAt())
		assert.Equal(t, usedAt, *tx.UsedAt())
	})

	t.Run("should reject use of pending entry", func(t *testing.T) {
		tx := newEntry(t, credit.TypeRefund)

		err := tx.Use(now)

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidStateTransitionError{}, err)
		assert.Equal(t, credit.StatusPending, tx.Status())
		assert.Nil(t, tx.UsedAt())
	})

	t.Run("should reject use of lapsed active entry with CreditExpiredError", func(t *testing.T) {
		tx := newEntry(t, credit.TypeCreditBonus)
		require.NoError(t, tx.Activate())

		afterExpiry := now.Add(184 * 24 * time.Hour)
		err := tx.Use(afterExpiry)

		require.Error(t, err)
		assert.IsType(t, &errs.CreditExpiredError{}, err)
		assert.ErrorIs(t, err, errs.ErrCreditExpired)
		assert.Equal(t, credit.StatusActive, tx.Status())
		assert.Nil(t, tx.UsedAt())
	})

	t.Run("should expire active entry", func(t *testing.T) {
		tx := newEntry(t, credit.TypeRefund)
		require.NoError(t, tx.Activate())

		err := tx.Expire()

		require.NoError(t, err)
		assert.Equal(t, credit.StatusExpired, tx.Status())
	})

	t.Run("should block active entry", func(t *testing.T) {
		tx := newEntry(t, credit.TypeRefund)
		require.NoError(t, tx.Activate())

		err := tx.Block()

		require.NoError(t, err)
		assert.Equal(t, credit.StatusBlocked, tx.Status())
	})

	t.Run("should reject any transition out of a used entry", func(t *testing.T) {
		tx := newEntry(t, credit.TypeRefund)
		require.NoError(t, tx.Activate())
		require.NoError(t, tx.Use(now))

		require.Error(t, tx.Activate())
		require.Error(t, tx.Use(now))
		require.Error(t, tx.Expire())
		require.Error(t, tx.Block())
		assert.Equal(t, credit.StatusUsed, tx.Status())
	})
}

func TestTransaction_IsExpired(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should report expired status as expired", func(t *testing.T) {
		tx, err := credit.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeRefund,
			mustMoney(t, "10.00"), "refund", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		require.NoError(t, tx.Activate())
		require.NoError(t, tx.Expire())

		assert.True(t, tx.IsExpired(now))
	})

	t.Run("should report lapsed expiry timestamp as expired", func(t *testing.T) {
		tx, err := credit.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeCreditBonus,
			mustMoney(t, "10.00"), "bonus", kernel.ZeroMoney(), now)
		require.NoError(t, err)

		assert.False(t, tx.IsExpired(now))
		assert.False(t, tx.IsExpired(now.Add(183*24*time.Hour)))
		assert.True(t, tx.IsExpired(now.Add(183*24*time.Hour+time.Second)))
	})

	t.Run("should never report non-expiring entries as expired", func(t *testing.T) {
		tx, err := credit.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeTransfer,
			mustMoney(t, "10.00"), "transfer", kernel.ZeroMoney(), now)
		require.NoError(t, err)

		assert.False(t, tx.IsExpired(now.Add(10*365*24*time.Hour)))
	})
}

func TestTransaction_TransferDirection(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	senderID := kernel.NewUUID()
	receiverID := kernel.NewUUID()

	newTransferEntry := func(t *testing.T, customerID kernel.UUID) *credit.Transaction {
		t.Helper()
		tx, err := credit.NewTransaction(kernel.NewUUID(), customerID, credit.TypeTransfer,
			mustMoney(t, "25.00"), "transfer", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		require.NoError(t, tx.LinkTransfer(senderID, receiverID))
		return tx
	}

	t.Run("should classify sender entry as debit", func(t *testing.T) {
		tx := newTransferEntry(t, senderID)

		assert.True(t, tx.IsDebit())
		assert.False(t, tx.IsCredit())
	})

	t.Run("should classify receiver entry as credit", func(t *testing.T) {
		tx := newTransferEntry(t, receiverID)

		assert.True(t, tx.IsCredit())
		assert.False(t, tx.IsDebit())
	})

	t.Run("should classify non-transfer entries by type", func(t *testing.T) {
		refund, err := credit.NewTransaction(kernel.NewUUID(), senderID, credit.TypeRefund,
			mustMoney(t, "10.00"), "refund", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		assert.True(t, refund.IsCredit())
		assert.False(t, refund.IsDebit())

		usage, err := credit.NewTransaction(kernel.NewUUID(), senderID, credit.TypeUsageDebit,
			mustMoney(t, "10.00"), "usage", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		assert.True(t, usage.IsDebit())
		assert.False(t, usage.IsCredit())
	})

	t.Run("should reject transfer link with invalid counterpart", func(t *testing.T) {
		tx, err := credit.NewTransaction(kernel.NewUUID(), senderID, credit.TypeTransfer,
			mustMoney(t, "25.00"), "transfer", kernel.ZeroMoney(), now)
		require.NoError(t, err)

		var invalidID kernel.UUID
		err = tx.LinkTransfer(invalidID, receiverID)

		require.Error(t, err)
		assert.Nil(t, tx.TransferFromID())
		assert.Nil(t, tx.TransferToID())
	})
}

func TestTransaction_Links(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should link collective and custom orders", func(t *testing.T) {
		tx, err := credit.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeRefund,
			mustMoney(t, "10.00"), "refund", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		assert.Nil(t, tx.CollectiveOrderID())
		assert.Nil(t, tx.CustomOrderID())

		poolID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		require.NoError(t, tx.LinkCollectiveOrder(poolID))
		require.NoError(t, tx.LinkCustomOrder(orderID))

		require.NotNil(t, tx.CollectiveOrderID())
		assert.True(t, tx.CollectiveOrderID().IsEqual(poolID))
		require.NotNil(t, tx.CustomOrderID())
		assert.True(t, tx.CustomOrderID().IsEqual(orderID))
	})
}

func TestRestoreTransaction(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should restore entry with full state", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		poolID := kernel.NewUUID()
		expiresAt := now.Add(365 * 24 * time.Hour)
		usedAt := now.Add(48 * time.Hour)

		tx, err := credit.RestoreTransaction(id, customerID, credit.TypeRefund,
			mustMoney(t, "99.90"), "refund", credit.StatusUsed, mustMoney(t, "120.40"),
			now, &expiresAt, &usedAt, &poolID, nil, nil, nil, nil)

		require.NoError(t, err)
		require.NoError(t, tx.Validate())
		assert.Equal(t, credit.StatusUsed, tx.Status())
		assert.Equal(t, now, tx.CreatedAt())
		require.NotNil(t, tx.ExpiresAt())
		assert.Equal(t, expiresAt, *tx.ExpiresAt())
		require.NotNil(t, tx.UsedAt())
		assert.Equal(t, usedAt, *tx.UsedAt())
		require.NotNil(t, tx.CollectiveOrderID())
		assert.True(t, tx.CollectiveOrderID().IsEqual(poolID))
		assert.Nil(t, tx.CustomOrderID())
	})

	t.Run("should not apply default expiry on restore", func(t *testing.T) {
		tx, err := credit.RestoreTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeRefund,
			mustMoney(t, "10.00"), "refund", credit.StatusActive, kernel.ZeroMoney(),
			now, nil, nil, nil, nil, nil, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, tx.ExpiresAt())
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		tx, err := credit.RestoreTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeRefund,
			mustMoney(t, "10.00"), "refund", credit.StatusUnknown, kernel.ZeroMoney(),
			now, nil, nil, nil, nil, nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestTransaction_SetBonusPercentage(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should record percentage on bonus entries", func(t *testing.T) {
		tx, err := credit.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeCreditBonus,
			mustMoney(t, "5.00"), "bonus", kernel.ZeroMoney(), now)
		require.NoError(t, err)
		assert.Nil(t, tx.BonusPercentage())

		err = tx.SetBonusPercentage(decimal.NewFromInt(10))

		require.NoError(t, err)
		require.NotNil(t, tx.BonusPercentage())
		assert.True(t, tx.BonusPercentage().Equal(decimal.NewFromInt(10)))
	})

	t.Run("should reject percentage on non-bonus entries", func(t *testing.T) {
		tx, err := credit.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeRefund,
			mustMoney(t, "5.00"), "refund", kernel.ZeroMoney(), now)
		require.NoError(t, err)

		err = tx.SetBonusPercentage(decimal.NewFromInt(10))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bonusPercentage is invalid")
		assert.Nil(t, tx.BonusPercentage())
	})

	t.Run("should reject percentage out of range", func(t *testing.T) {
		tx, err := credit.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), credit.TypeReferralBonus,
			mustMoney(t, "5.00"), "bonus", kernel.ZeroMoney(), now)
		require.NoError(t, err)

		for _, pct := range []int64{-1, 101} {
			err = tx.SetBonusPercentage(decimal.NewFromInt(pct))

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
		}
		assert.Nil(t, tx.BonusPercentage())
	})
}
