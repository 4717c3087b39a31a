package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/customorder"
)

// MarkShippedCommandHandler handles the business logic for pool shipment.
// Members follow the pool to InTransit in one batch update.
type MarkShippedCommandHandler struct {
	uowFactory PoolMembersUoWFactory
}

// NewMarkShippedCommandHandler creates a handler for pool shipments.
func NewMarkShippedCommandHandler(uowFactory PoolMembersUoWFactory) MarkShippedCommandHandler {
	return MarkShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment command.
func (h *MarkShippedCommandHandler) Handle(ctx context.Context, cmd MarkShippedCommand) error {
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

	if err = pool.MarkShipped(cmd.TrackingCode(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().UpdateStatusForPool(ctx, pool.ID(), customorder.StatusInTransit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
