package queries

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerLedgerHistoryQueryHandler retrieves a customer's credit
// transaction history from the database, newest first.
type GetCustomerLedgerHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerLedgerHistoryQueryHandler creates a handler for ledger
// history queries.
func NewGetCustomerLedgerHistoryQueryHandler(db *gorm.DB) GetCustomerLedgerHistoryQueryHandler {
	return GetCustomerLedgerHistoryQueryHandler{db: db}
}

// Handle executes the query with offset pagination and the optional date
// range.
func (h GetCustomerLedgerHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerLedgerHistoryQuery,
) ([]GetCustomerLedgerHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			transaction_type,
			amount,
			description,
			status,
			balance_after,
			expires_at,
			created_at
		FROM credit_transactions
		WHERE customer_id = ?
	`
	args := []any{query.CustomerID().String()}

	if query.From() != nil {
		sql += ` AND created_at >= ?`
		args = append(args, *query.From())
	}
	if query.To() != nil {
		sql += ` AND created_at < ?`
		args = append(args, *query.To())
	}

	sql += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())

	entries := make([]GetCustomerLedgerHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomerLedgerHistoryQueryResponse
		var id uuid.UUID
		var amount, balanceAfter decimal.Decimal
		var expiresAt *time.Time

		err = rows.Scan(
			&id,
			&resp.TransactionType,
			&amount,
			&resp.Description,
			&resp.Status,
			&balanceAfter,
			&expiresAt,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = entryID
		resp.Amount = amount
		resp.BalanceAfter = balanceAfter
		resp.ExpiresAt = expiresAt
		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
