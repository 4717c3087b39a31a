package queries

import (
	"context"
	"database/sql"
	"errors"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerBalanceQueryHandler retrieves a customer's cached and derived
// balances from the database.
type GetCustomerBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerBalanceQueryHandler creates a handler for balance queries.
func NewGetCustomerBalanceQueryHandler(db *gorm.DB) GetCustomerBalanceQueryHandler {
	return GetCustomerBalanceQueryHandler{db: db}
}

// Handle executes the query. The derived balance replays the full ledger
// history in SQL: every credit entry counts positive and every debit entry
// negative, regardless of the status the entry has reached since. Transfer
// entries count on the side their direction implies.
func (h GetCustomerBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerBalanceQuery,
) (GetCustomerBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerBalanceQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.credit_balance,
			COALESCE((
				SELECT SUM(CASE
					WHEN t.transfer_to_id = c.id OR (t.transfer_to_id IS NULL AND t.transaction_type NOT IN (?, ?)) THEN t.amount
					ELSE -t.amount
				END)
				FROM credit_transactions t
				WHERE t.customer_id = c.id
			), 0) AS derived_balance
		FROM customers c
		WHERE c.id = ?
	`,
		credit.TypeExpirationDebit.String(),
		credit.TypeUsageDebit.String(),
		query.CustomerID().String(),
	).Row()

	var resp GetCustomerBalanceQueryResponse
	var cached, derived decimal.Decimal

	err := row.Scan(&cached, &derived)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCustomerBalanceQueryResponse{}, errs.NewObjectNotFoundError("customerID", query.CustomerID())
	}
	if err != nil {
		return GetCustomerBalanceQueryResponse{}, err
	}

	resp.CustomerID = query.CustomerID()
	resp.CachedBalance = cached
	resp.DerivedBalance = derived
	return resp, nil
}
