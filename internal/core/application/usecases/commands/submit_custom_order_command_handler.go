package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/customorder"
)

// SubmitCustomOrderCommandHandler handles the business logic for order
// submission. Creates new orders in PendingAnalysis status; the quantity and
// urgency bounds are enforced by the aggregate.
type SubmitCustomOrderCommandHandler struct {
	uowFactory CustomOrderUoWFactory
}

// NewSubmitCustomOrderCommandHandler creates a handler for order submission.
// Requires a CustomOrderUoWFactory for transactional persistence.
func NewSubmitCustomOrderCommandHandler(uowFactory CustomOrderUoWFactory) SubmitCustomOrderCommandHandler {
	return SubmitCustomOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h *SubmitCustomOrderCommandHandler) Handle(ctx context.Context, cmd SubmitCustomOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := customorder.NewCustomOrder(cmd.OrderID(), cmd.CustomerID(),
		cmd.Description(), cmd.Details(), cmd.Quantity(), cmd.Urgency(),
		cmd.EstimatedPrice(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
