// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database with raw SQL, returning plain response structs.
package queries

import (
	"errors"
	"time"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrGetOrdersPendingAnalysisQueryIsNotConstructed = errors.New(
	"GetOrdersPendingAnalysisQuery must be created via NewGetOrdersPendingAnalysisQuery constructor",
)

// GetOrdersPendingAnalysisQuery retrieves the admin work queue: every order
// awaiting pricing, most urgent first and oldest first within the same
// urgency.
type GetOrdersPendingAnalysisQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersPendingAnalysisQuery creates a query for the analysis work queue.
func NewGetOrdersPendingAnalysisQuery() GetOrdersPendingAnalysisQuery {
	return GetOrdersPendingAnalysisQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersPendingAnalysisQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersPendingAnalysisQueryIsNotConstructed)
}

// GetOrdersPendingAnalysisQueryResponse represents one order in the analysis
// work queue.
type GetOrdersPendingAnalysisQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Description string
	Quantity    int
	Urgency     customorder.Urgency
	CreatedAt   time.Time
}
