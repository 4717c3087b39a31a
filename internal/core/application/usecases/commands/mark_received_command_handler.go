package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/customorder"
)

// MarkReceivedCommandHandler handles the business logic for warehouse
// arrival. Members follow the pool to Received in one batch update.
type MarkReceivedCommandHandler struct {
	uowFactory PoolMembersUoWFactory
}

// NewMarkReceivedCommandHandler creates a handler for warehouse arrivals.
func NewMarkReceivedCommandHandler(uowFactory PoolMembersUoWFactory) MarkReceivedCommandHandler {
	return MarkReceivedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the arrival command.
func (h *MarkReceivedCommandHandler) Handle(ctx context.Context, cmd MarkReceivedCommand) error {
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

	if err = pool.MarkReceived(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().UpdateStatusForPool(ctx, pool.ID(), customorder.StatusReceived); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
