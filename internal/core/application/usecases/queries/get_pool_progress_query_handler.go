package queries

import (
	"context"
	"database/sql"
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPoolProgressQueryHandler retrieves one pool's progress toward its
// minimum from the database.
type GetPoolProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetPoolProgressQueryHandler creates a handler for pool progress queries.
func NewGetPoolProgressQueryHandler(db *gorm.DB) GetPoolProgressQueryHandler {
	return GetPoolProgressQueryHandler{db: db}
}

// Handle executes the query. The completion percentage and remaining amount
// are derived in SQL from the stored values.
func (h GetPoolProgressQueryHandler) Handle(
	ctx context.Context,
	query GetPoolProgressQuery,
) (GetPoolProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPoolProgressQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.status,
			p.minimum_value,
			p.current_value,
			(SELECT COUNT(*) FROM custom_orders o WHERE o.collective_order_id = p.id) AS member_count,
			LEAST(p.current_value / p.minimum_value * 100, 100) AS completion_percent,
			GREATEST(p.minimum_value - p.current_value, 0) AS remaining_amount
		FROM collective_orders p
		WHERE p.id = ?
	`, query.PoolID().String()).Row()

	var resp GetPoolProgressQueryResponse
	var id uuid.UUID
	var minimumValue, currentValue, remainingAmount decimal.Decimal

	err := row.Scan(
		&id,
		&resp.Status,
		&minimumValue,
		&currentValue,
		&resp.MemberCount,
		&resp.CompletionPercent,
		&remainingAmount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPoolProgressQueryResponse{}, errs.NewObjectNotFoundError("collectiveOrderID", query.PoolID())
	}
	if err != nil {
		return GetPoolProgressQueryResponse{}, err
	}

	poolID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPoolProgressQueryResponse{}, err
	}

	resp.ID = poolID
	resp.MinimumValue = minimumValue
	resp.CurrentValue = currentValue
	resp.RemainingAmount = remainingAmount
	return resp, nil
}
