package queries

import (
	"errors"
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomerLedgerHistoryQueryIsNotConstructed = errors.New(
	"GetCustomerLedgerHistoryQuery must be created via NewGetCustomerLedgerHistoryQuery constructor",
)

// GetCustomerLedgerHistoryQuery retrieves one customer's credit transactions,
// newest first, with an optional date range and offset pagination.
type GetCustomerLedgerHistoryQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	from       *time.Time
	to         *time.Time
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewGetCustomerLedgerHistoryQuery creates a query for a customer's ledger
// history. page is 1-based; pageSize 0 selects the default. from and to bound
// the entry creation time when set.
func NewGetCustomerLedgerHistoryQuery(
	customerID kernel.UUID,
	from *time.Time,
	to *time.Time,
	page int,
	pageSize int,
) (GetCustomerLedgerHistoryQuery, error) {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	q := GetCustomerLedgerHistoryQuery{
		from:     from,
		to:       to,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setCustomerID(customerID),
		q.validatePaging(),
		q.validateRange(),
	); err != nil {
		return GetCustomerLedgerHistoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerLedgerHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerLedgerHistoryQueryIsNotConstructed)
}

// CustomerID returns the customer whose ledger is listed.
func (q GetCustomerLedgerHistoryQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// From returns the inclusive lower bound on entry creation, or nil.
func (q GetCustomerLedgerHistoryQuery) From() *time.Time {
	return q.from
}

// To returns the exclusive upper bound on entry creation, or nil.
func (q GetCustomerLedgerHistoryQuery) To() *time.Time {
	return q.to
}

// Page returns the 1-based page number.
func (q GetCustomerLedgerHistoryQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetCustomerLedgerHistoryQuery) PageSize() int {
	return q.pageSize
}

func (q *GetCustomerLedgerHistoryQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

func (q *GetCustomerLedgerHistoryQuery) validatePaging() error {
	if q.page < 1 {
		return errs.NewValueIsInvalidErrorWithCause("page is invalid",
			fmt.Errorf("%d is not greater than 0", q.page))
	}
	if q.pageSize < 1 || q.pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", q.pageSize, 1, maxPageSize)
	}
	return nil
}

func (q *GetCustomerLedgerHistoryQuery) validateRange() error {
	if q.from == nil || q.to == nil {
		return nil
	}
	if !q.to.After(*q.from) {
		return errs.NewValueIsInvalidErrorWithCause("to is invalid",
			fmt.Errorf("%s is not after %s", q.to, q.from))
	}
	return nil
}

// GetCustomerLedgerHistoryQueryResponse represents one ledger entry in a
// customer's history.
type GetCustomerLedgerHistoryQueryResponse struct {
	ID              kernel.UUID
	TransactionType string
	Amount          decimal.Decimal
	Description     string
	Status          string
	BalanceAfter    decimal.Decimal
	ExpiresAt       *time.Time
	CreatedAt       time.Time
}
