package queries

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPoolProgressQueryIsNotConstructed = errors.New(
	"GetPoolProgressQuery must be created via NewGetPoolProgressQuery constructor",
)

// GetPoolProgressQuery retrieves one pool's progress toward its minimum
// value: member count, completion percentage, and the amount still missing.
type GetPoolProgressQuery struct { //nolint:recvcheck //using for validation
	poolID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPoolProgressQuery creates a query for a pool's progress.
func NewGetPoolProgressQuery(poolID kernel.UUID) (GetPoolProgressQuery, error) {
	q := GetPoolProgressQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPoolID(poolID); err != nil {
		return GetPoolProgressQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPoolProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetPoolProgressQueryIsNotConstructed)
}

// PoolID returns the pool being inspected.
func (q GetPoolProgressQuery) PoolID() kernel.UUID {
	return q.poolID
}

func (q *GetPoolProgressQuery) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	q.poolID = poolID
	return nil
}

// GetPoolProgressQueryResponse represents a pool's progress toward its
// minimum. CompletionPercent is clamped to [0, 100] and RemainingAmount is
// zero once the minimum is met.
type GetPoolProgressQueryResponse struct {
	ID                kernel.UUID
	Status            string
	MinimumValue      decimal.Decimal
	CurrentValue      decimal.Decimal
	MemberCount       int
	CompletionPercent float64
	RemainingAmount   decimal.Decimal
}
