package commands

import (
	"context"
	"time"
)

// OpenPaymentWindowCommandHandler handles the business logic for starting
// payment collection on a pool.
type OpenPaymentWindowCommandHandler struct {
	uowFactory PoolUoWFactory
}

// NewOpenPaymentWindowCommandHandler creates a handler for opening payment windows.
func NewOpenPaymentWindowCommandHandler(uowFactory PoolUoWFactory) OpenPaymentWindowCommandHandler {
	return OpenPaymentWindowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment window command.
func (h *OpenPaymentWindowCommandHandler) Handle(ctx context.Context, cmd OpenPaymentWindowCommand) error {
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

	pool, err := uow.CollectiveOrderRepository().Get(ctx, cmd.PoolID())
	if err != nil {
		return err
	}

	if err = pool.OpenPaymentWindow(cmd.Deadline(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
