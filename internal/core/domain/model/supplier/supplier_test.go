package supplier_test

import (
	"testing"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/core/domain/model/supplier"
	"groupbuy/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	validID := kernel.NewUUID()
	validMinimum, _ := kernel.NewMoneyFromString("1000.00")
	validFee := decimal.NewFromInt(10)

	t.Run("should create valid supplier with all valid parameters", func(t *testing.T) {
		s, err := supplier.NewSupplier(validID, "Atacado Central", validMinimum, validFee, 30)

		require.NoError(t, err)
		assert.NotNil(t, s)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.Equal(t, "Atacado Central", s.Name())
		assert.True(t, s.MinimumOrderValue().IsEqual(validMinimum))
		assert.True(t, s.AdminFeePercent().Equal(validFee))
		assert.Equal(t, 30, s.DeliveryTimeDays())
		assert.Equal(t, supplier.MaxPerformanceRating, s.PerformanceRating())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := supplier.NewSupplier(invalidID, "Atacado Central", validMinimum, validFee, 30)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		s, err := supplier.NewSupplier(validID, "", validMinimum, validFee, 30)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with zero minimum order value", func(t *testing.T) {
		s, err := supplier.NewSupplier(validID, "Atacado Central", kernel.ZeroMoney(), validFee, 30)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "minimumOrderValue is invalid")
		assert.Contains(t, err.Error(), "0.00 is not greater than 0")
	})

	t.Run("should fail with admin fee out of range", func(t *testing.T) {
		testCases := []decimal.Decimal{
			decimal.NewFromInt(-1),
			decimal.NewFromInt(101),
		}

		for _, fee := range testCases {
			s, err := supplier.NewSupplier(validID, "Atacado Central", validMinimum, fee, 30)

			require.Error(t, err)
			assert.Nil(t, s)
			assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
			assert.Contains(t, err.Error(), "adminFeePercent")
		}
	})

	t.Run("should accept admin fee boundaries", func(t *testing.T) {
		for _, fee := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(100)} {
			s, err := supplier.NewSupplier(validID, "Atacado Central", validMinimum, fee, 30)

			require.NoError(t, err)
			assert.True(t, s.AdminFeePercent().Equal(fee))
		}
	})

	t.Run("should fail with delivery time out of range", func(t *testing.T) {
		for _, days := range []int{0, -5, 366} {
			s, err := supplier.NewSupplier(validID, "Atacado Central", validMinimum, validFee, days)

			require.Error(t, err)
			assert.Nil(t, s)
			assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
			assert.Contains(t, err.Error(), "deliveryTimeDays")
		}
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := supplier.NewSupplier(invalidID, "", kernel.ZeroMoney(), decimal.NewFromInt(-1), 0)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "minimumOrderValue is invalid")
		assert.Contains(t, err.Error(), "adminFeePercent")
		assert.Contains(t, err.Error(), "deliveryTimeDays")
	})
}

func TestRestoreSupplier(t *testing.T) {
	validID := kernel.NewUUID()
	validMinimum, _ := kernel.NewMoneyFromString("500.00")
	validFee := decimal.NewFromFloat(7.5)

	t.Run("should restore supplier with explicit rating", func(t *testing.T) {
		s, err := supplier.RestoreSupplier(validID, "Fornecedor Sul", validMinimum, validFee, 15, 3)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, 3, s.PerformanceRating())
	})

	t.Run("should fail with rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			s, err := supplier.RestoreSupplier(validID, "Fornecedor Sul", validMinimum, validFee, 15, rating)

			require.Error(t, err)
			assert.Nil(t, s)
			assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
			assert.Contains(t, err.Error(), "performanceRating")
		}
	})
}

func TestSupplier_Validate(t *testing.T) {
	t.Run("should fail validation for nil supplier", func(t *testing.T) {
		var s *supplier.Supplier

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, supplier.ErrSupplierIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value supplier", func(t *testing.T) {
		var s supplier.Supplier

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, supplier.ErrSupplierIsNotConstructed, err)
	})
}

func TestSupplier_Rate(t *testing.T) {
	validMinimum, _ := kernel.NewMoneyFromString("500.00")

	t.Run("should update rating within range", func(t *testing.T) {
		s, _ := supplier.NewSupplier(kernel.NewUUID(), "Fornecedor Sul", validMinimum, decimal.Zero, 10)

		err := s.Rate(2)

		require.NoError(t, err)
		assert.Equal(t, 2, s.PerformanceRating())
	})

	t.Run("should reject rating out of range and keep previous value", func(t *testing.T) {
		s, _ := supplier.NewSupplier(kernel.NewUUID(), "Fornecedor Sul", validMinimum, decimal.Zero, 10)

		err := s.Rate(6)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
		assert.Equal(t, supplier.MaxPerformanceRating, s.PerformanceRating())
	})
}

func TestSupplier_IsEqual(t *testing.T) {
	validMinimum, _ := kernel.NewMoneyFromString("500.00")
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	t.Run("should return true for suppliers with same ID", func(t *testing.T) {
		s1, _ := supplier.NewSupplier(id1, "A", validMinimum, decimal.Zero, 10)
		s2, _ := supplier.NewSupplier(id1, "B", validMinimum, decimal.NewFromInt(5), 20)

		assert.True(t, s1.IsEqual(s2))
		assert.True(t, s2.IsEqual(s1))
	})

	t.Run("should return false for suppliers with different IDs", func(t *testing.T) {
		s1, _ := supplier.NewSupplier(id1, "A", validMinimum, decimal.Zero, 10)
		s2, _ := supplier.NewSupplier(id2, "A", validMinimum, decimal.Zero, 10)

		assert.False(t, s1.IsEqual(s2))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		s1, _ := supplier.NewSupplier(id1, "A", validMinimum, decimal.Zero, 10)

		assert.False(t, s1.IsEqual(nil))
	})
}
