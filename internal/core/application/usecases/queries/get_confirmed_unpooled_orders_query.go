package queries

import (
	"errors"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetConfirmedUnpooledOrdersQueryIsNotConstructed = errors.New(
	"GetConfirmedUnpooledOrdersQuery must be created via NewGetConfirmedUnpooledOrdersQuery constructor",
)

// GetConfirmedUnpooledOrdersQuery retrieves confirmed orders of one supplier
// that are not yet in a pool, oldest first. This is the demand waiting for
// the supplier's next collective order.
type GetConfirmedUnpooledOrdersQuery struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConfirmedUnpooledOrdersQuery creates a query for a supplier's
// poolable demand.
func NewGetConfirmedUnpooledOrdersQuery(supplierID kernel.UUID) (GetConfirmedUnpooledOrdersQuery, error) {
	q := GetConfirmedUnpooledOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setSupplierID(supplierID); err != nil {
		return GetConfirmedUnpooledOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConfirmedUnpooledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetConfirmedUnpooledOrdersQueryIsNotConstructed)
}

// SupplierID returns the supplier whose demand is listed.
func (q GetConfirmedUnpooledOrdersQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

func (q *GetConfirmedUnpooledOrdersQuery) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	q.supplierID = supplierID
	return nil
}

// GetConfirmedUnpooledOrdersQueryResponse represents one confirmed order
// waiting for a pool. TotalValue is the amount it would contribute.
type GetConfirmedUnpooledOrdersQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Description string
	Quantity    int
	TotalValue  decimal.Decimal
	ConfirmedAt time.Time
}
