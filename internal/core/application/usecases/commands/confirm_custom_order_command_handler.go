package commands

import (
	"context"
	"time"
)

// ConfirmCustomOrderCommandHandler handles the business logic for order
// confirmation, moving a Priced order to Confirmed.
type ConfirmCustomOrderCommandHandler struct {
	uowFactory CustomOrderUoWFactory
}

// NewConfirmCustomOrderCommandHandler creates a handler for order confirmation.
func NewConfirmCustomOrderCommandHandler(uowFactory CustomOrderUoWFactory) ConfirmCustomOrderCommandHandler {
	return ConfirmCustomOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmCustomOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmCustomOrderCommand) error {
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

	order, err := uow.CustomOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Confirm(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
