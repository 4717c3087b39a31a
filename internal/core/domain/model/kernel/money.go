package kernel

import (
	"fmt"

	"groupbuy/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount with
// two-decimal precision. It wraps github.com/shopspring/decimal to avoid the
// rounding drift of floating-point arithmetic in balance and pool-value
// calculations.
//
// The zero value of Money is a valid amount of 0.00, so Money can be used
// directly as an accumulator. All arithmetic operations return new values;
// Money is immutable and safe for concurrent use.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("150.00")
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.MulInt(2) // 300.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal value, rounding to two decimal
// places. Returns a ValueIsInvalidError for negative amounts.
func NewMoney(value decimal.Decimal) (Money, error) {
	rounded := value.Round(2)
	if rounded.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", rounded.String()),
		)
	}
	return Money{amount: rounded}, nil
}

// NewMoneyFromString parses a decimal string such as "150.00" into Money.
// Returns a ValueIsInvalidError if the string is not a valid decimal or the
// amount is negative.
func NewMoneyFromString(s string) (Money, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(value)
}

// ZeroMoney returns a Money of 0.00.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. Returns a ValueIsInvalidError
// when the result would be negative, since Money cannot represent debt.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s minus %s is negative", m.amount.String(), other.amount.String()),
		)
	}
	return Money{amount: result}, nil
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Used for finalPrice × quantity totals.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// CompletionPercentage returns min(m/target, 1) × 100 as a float, clamped to
// [0, 100]. Returns 0 when target is zero.
func (m Money) CompletionPercentage(target Money) float64 {
	if target.amount.IsZero() {
		return 0
	}
	ratio, _ := m.amount.Div(target.amount).Float64()
	pct := ratio * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// String returns the amount formatted with two decimal places, e.g. "150.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
