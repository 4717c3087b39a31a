package commands

import (
	"context"
	"time"
)

// AnalyzeCustomOrderCommandHandler handles the business logic for order
// pricing. Loads the supplier to make sure the order is assigned to a
// registered one, then moves the order from PendingAnalysis to Priced.
type AnalyzeCustomOrderCommandHandler struct {
	uowFactory AnalysisUoWFactory
}

// NewAnalyzeCustomOrderCommandHandler creates a handler for order pricing.
func NewAnalyzeCustomOrderCommandHandler(uowFactory AnalysisUoWFactory) AnalyzeCustomOrderCommandHandler {
	return AnalyzeCustomOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing command. Fails with an ObjectNotFoundError
// when the order or supplier does not exist and with an
// InvalidStateTransitionError when the order is not awaiting analysis.
func (h *AnalyzeCustomOrderCommandHandler) Handle(ctx context.Context, cmd AnalyzeCustomOrderCommand) error {
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

	if _, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID()); err != nil {
		return err
	}

	order, err := uow.CustomOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Analyze(cmd.AdminID(), cmd.FinalPrice(), cmd.SupplierID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
