package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/customorder"
)

// MarkDeliveredCommandHandler handles the business logic for pool delivery.
// Members follow the pool to Delivered, their terminal success state, in one
// batch update.
type MarkDeliveredCommandHandler struct {
	uowFactory PoolMembersUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for pool deliveries.
func NewMarkDeliveredCommandHandler(uowFactory PoolMembersUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if err = pool.MarkDelivered(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().UpdateStatusForPool(ctx, pool.ID(), customorder.StatusDelivered); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
