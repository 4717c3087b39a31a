package queries

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomerBalanceQueryIsNotConstructed = errors.New(
	"GetCustomerBalanceQuery must be created via NewGetCustomerBalanceQuery constructor",
)

// GetCustomerBalanceQuery retrieves a customer's credit balance: the cached
// value alongside the sum derived from active ledger entries. The two are
// equal by construction; reporting both makes drift visible.
type GetCustomerBalanceQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerBalanceQuery creates a query for a customer's balance.
func NewGetCustomerBalanceQuery(customerID kernel.UUID) (GetCustomerBalanceQuery, error) {
	q := GetCustomerBalanceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetCustomerBalanceQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerBalanceQueryIsNotConstructed)
}

// CustomerID returns the customer whose balance is read.
func (q GetCustomerBalanceQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerBalanceQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetCustomerBalanceQueryResponse represents a customer's balance.
type GetCustomerBalanceQueryResponse struct {
	CustomerID     kernel.UUID
	CachedBalance  decimal.Decimal
	DerivedBalance decimal.Decimal
}
