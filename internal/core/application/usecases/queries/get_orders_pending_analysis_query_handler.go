package queries

import (
	"context"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersPendingAnalysisQueryHandler retrieves orders awaiting admin
// pricing from the database, most urgent first.
type GetOrdersPendingAnalysisQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersPendingAnalysisQueryHandler creates a handler for the analysis
// work queue. Requires a GORM database connection for query execution.
func NewGetOrdersPendingAnalysisQueryHandler(db *gorm.DB) GetOrdersPendingAnalysisQueryHandler {
	return GetOrdersPendingAnalysisQueryHandler{db: db}
}

// Handle executes the query. Orders are sorted by urgency descending, then
// by submission time ascending, so the oldest of the most urgent requests
// surfaces first.
func (h GetOrdersPendingAnalysisQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersPendingAnalysisQuery,
) ([]GetOrdersPendingAnalysisQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersPendingAnalysisQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			description,
			quantity,
			urgency,
			created_at
		FROM custom_orders
		WHERE status = ?
		ORDER BY urgency DESC, created_at ASC
	`, customorder.StatusPendingAnalysis.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersPendingAnalysisQueryResponse
		var id, customerID uuid.UUID
		var urgency int

		err = rows.Scan(
			&id,
			&customerID,
			&resp.Description,
			&resp.Quantity,
			&urgency,
			&resp.CreatedAt,
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
		resp.Urgency = customorder.Urgency(urgency)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
