package queries

import (
	"errors"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOverduePaymentPoolsQueryIsNotConstructed = errors.New(
	"GetOverduePaymentPoolsQuery must be created via NewGetOverduePaymentPoolsQuery constructor",
)

// GetOverduePaymentPoolsQuery retrieves pools still collecting customer
// payments past their deadline, as of a reference instant. The workflow
// never auto-cancels on a missed deadline; this query feeds the external
// scheduler and admin tooling that decide what to do.
type GetOverduePaymentPoolsQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetOverduePaymentPoolsQuery creates a query for overdue pools as of now.
func NewGetOverduePaymentPoolsQuery(now time.Time) (GetOverduePaymentPoolsQuery, error) {
	q := GetOverduePaymentPoolsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setNow(now); err != nil {
		return GetOverduePaymentPoolsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverduePaymentPoolsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverduePaymentPoolsQueryIsNotConstructed)
}

// Now returns the reference instant deadlines are compared against.
func (q GetOverduePaymentPoolsQuery) Now() time.Time {
	return q.now
}

func (q *GetOverduePaymentPoolsQuery) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now is required")
	}

	q.now = now
	return nil
}

// GetOverduePaymentPoolsQueryResponse represents one pool past its payment
// deadline, with how much of the expected total is still outstanding.
type GetOverduePaymentPoolsQueryResponse struct {
	ID              kernel.UUID
	SupplierID      kernel.UUID
	PaymentDeadline time.Time
	CurrentValue    decimal.Decimal
	TotalReceived   decimal.Decimal
	OverdueBy       time.Duration
}
