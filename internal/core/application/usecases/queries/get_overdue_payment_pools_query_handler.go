package queries

import (
	"context"

	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOverduePaymentPoolsQueryHandler retrieves pools past their payment
// deadline from the database.
type GetOverduePaymentPoolsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverduePaymentPoolsQueryHandler creates a handler for overdue pool
// queries.
func NewGetOverduePaymentPoolsQueryHandler(db *gorm.DB) GetOverduePaymentPoolsQueryHandler {
	return GetOverduePaymentPoolsQueryHandler{db: db}
}

// Handle executes the query, most overdue first.
func (h GetOverduePaymentPoolsQueryHandler) Handle(
	ctx context.Context,
	query GetOverduePaymentPoolsQuery,
) ([]GetOverduePaymentPoolsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pools := make([]GetOverduePaymentPoolsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			payment_deadline,
			current_value,
			total_received
		FROM collective_orders
		WHERE status = ?
		  AND payment_deadline < ?
		ORDER BY payment_deadline ASC
	`, collectiveorder.StatusPaymentWindow.String(), query.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverduePaymentPoolsQueryResponse
		var id, supplierID uuid.UUID
		var currentValue, totalReceived decimal.Decimal

		err = rows.Scan(
			&id,
			&supplierID,
			&resp.PaymentDeadline,
			&currentValue,
			&totalReceived,
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
		resp.CurrentValue = currentValue
		resp.TotalReceived = totalReceived
		resp.OverdueBy = query.Now().Sub(resp.PaymentDeadline)
		pools = append(pools, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pools, nil
}
