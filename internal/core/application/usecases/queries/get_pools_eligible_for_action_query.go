package queries

import (
	"errors"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPoolsEligibleForActionQueryIsNotConstructed = errors.New(
	"GetPoolsEligibleForActionQuery must be created via NewGetPoolsEligibleForActionQuery constructor",
)

// GetPoolsEligibleForActionQuery retrieves the admin work queue for pools:
// every pool sitting in a state that waits on an admin decision. A pool at
// MinimumReached waits for its payment window, one in PaymentWindow waits
// for the supplier payment, and a Delivered one waits to be closed.
type GetPoolsEligibleForActionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPoolsEligibleForActionQuery creates a query for the pool work queue.
func NewGetPoolsEligibleForActionQuery() GetPoolsEligibleForActionQuery {
	return GetPoolsEligibleForActionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPoolsEligibleForActionQuery) Validate() error {
	return q.guard.Validate(ErrGetPoolsEligibleForActionQueryIsNotConstructed)
}

// GetPoolsEligibleForActionQueryResponse represents one pool awaiting an
// admin decision.
type GetPoolsEligibleForActionQueryResponse struct {
	ID           kernel.UUID
	SupplierID   kernel.UUID
	Status       string
	MinimumValue decimal.Decimal
	CurrentValue decimal.Decimal
	CreatedAt    time.Time
}
