package commands

import (
	"context"
	"time"
)

// CloseCollectiveOrderCommandHandler handles the business logic for pool
// settlement. Closing is idempotent in effect: a second close fails with an
// InvalidStateTransitionError and leaves the settled figures untouched.
type CloseCollectiveOrderCommandHandler struct {
	uowFactory PoolUoWFactory
}

// NewCloseCollectiveOrderCommandHandler creates a handler for pool settlement.
func NewCloseCollectiveOrderCommandHandler(uowFactory PoolUoWFactory) CloseCollectiveOrderCommandHandler {
	return CloseCollectiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the close command.
func (h *CloseCollectiveOrderCommandHandler) Handle(ctx context.Context, cmd CloseCollectiveOrderCommand) error {
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

	if err = pool.Close(cmd.AdminID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
