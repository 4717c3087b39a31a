package queries

import (
	"context"

	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPoolsEligibleForActionQueryHandler retrieves pools awaiting an admin
// decision from the database.
type GetPoolsEligibleForActionQueryHandler struct {
	db *gorm.DB
}

// NewGetPoolsEligibleForActionQueryHandler creates a handler for the pool
// work queue.
func NewGetPoolsEligibleForActionQueryHandler(db *gorm.DB) GetPoolsEligibleForActionQueryHandler {
	return GetPoolsEligibleForActionQueryHandler{db: db}
}

// Handle executes the query, oldest pool first.
func (h GetPoolsEligibleForActionQueryHandler) Handle(
	ctx context.Context,
	query GetPoolsEligibleForActionQuery,
) ([]GetPoolsEligibleForActionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pools := make([]GetPoolsEligibleForActionQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			status,
			minimum_value,
			current_value,
			created_at
		FROM collective_orders
		WHERE status IN (?, ?, ?)
		ORDER BY created_at ASC
	`,
		collectiveorder.StatusMinimumReached.String(),
		collectiveorder.StatusPaymentWindow.String(),
		collectiveorder.StatusDelivered.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPoolsEligibleForActionQueryResponse
		var id, supplierID uuid.UUID
		var minimumValue, currentValue decimal.Decimal

		err = rows.Scan(
			&id,
			&supplierID,
			&resp.Status,
			&minimumValue,
			&currentValue,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		poolID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		suppID, idErr := kernel.UUIDFromBytes(supplierID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = poolID
		resp.SupplierID = suppID
		resp.MinimumValue = minimumValue
		resp.CurrentValue = currentValue
		pools = append(pools, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pools, nil
}
