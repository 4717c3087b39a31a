package queries

import (
	"errors"
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetCustomerOrdersQuery retrieves one customer's orders, newest first, with
// an optional status filter and offset pagination.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	status     *customorder.Status
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
// page is 1-based; pageSize 0 selects the default.
func NewGetCustomerOrdersQuery(
	customerID kernel.UUID,
	status *customorder.Status,
	page int,
	pageSize int,
) (GetCustomerOrdersQuery, error) {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	q := GetCustomerOrdersQuery{
		status:   status,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setCustomerID(customerID),
		q.validatePaging(),
		q.validateStatus(),
	); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Status returns the status filter, or nil for all statuses.
func (q GetCustomerOrdersQuery) Status() *customorder.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetCustomerOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetCustomerOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q *GetCustomerOrdersQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

func (q *GetCustomerOrdersQuery) validatePaging() error {
	if q.page < 1 {
		return errs.NewValueIsInvalidErrorWithCause("page is invalid",
			fmt.Errorf("%d is not greater than 0", q.page))
	}
	if q.pageSize < 1 || q.pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", q.pageSize, 1, maxPageSize)
	}
	return nil
}

func (q *GetCustomerOrdersQuery) validateStatus() error {
	if q.status == nil {
		return nil
	}
	return q.status.Validate()
}

// GetCustomerOrdersQueryResponse represents one order in a customer's history.
type GetCustomerOrdersQueryResponse struct {
	ID          kernel.UUID
	Description string
	Quantity    int
	Status      string
	FinalPrice  *decimal.Decimal
	CreatedAt   time.Time
}
