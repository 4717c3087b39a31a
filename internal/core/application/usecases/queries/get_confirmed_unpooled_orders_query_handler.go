package queries

import (
	"context"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetConfirmedUnpooledOrdersQueryHandler retrieves the demand waiting for a
// supplier's next pool from the database.
type GetConfirmedUnpooledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetConfirmedUnpooledOrdersQueryHandler creates a handler for poolable
// demand queries.
func NewGetConfirmedUnpooledOrdersQueryHandler(db *gorm.DB) GetConfirmedUnpooledOrdersQueryHandler {
	return GetConfirmedUnpooledOrdersQueryHandler{db: db}
}

// Handle executes the query, oldest confirmation first so long-waiting
// customers pool before recent ones.
func (h GetConfirmedUnpooledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetConfirmedUnpooledOrdersQuery,
) ([]GetConfirmedUnpooledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetConfirmedUnpooledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			description,
			quantity,
			final_price * quantity AS total_value,
			confirmed_at
		FROM custom_orders
		WHERE supplier_id = ?
		  AND status = ?
		  AND collective_order_id IS NULL
		ORDER BY confirmed_at ASC
	`, query.SupplierID().String(), customorder.StatusConfirmed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetConfirmedUnpooledOrdersQueryResponse
		var id, customerID uuid.UUID
		var totalValue decimal.Decimal

		err = rows.Scan(
			&id,
			&customerID,
			&resp.Description,
			&resp.Quantity,
			&totalValue,
			&resp.ConfirmedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.CustomerID = custID
		resp.TotalValue = totalValue
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
