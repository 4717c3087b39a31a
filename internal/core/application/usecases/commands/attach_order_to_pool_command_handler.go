package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/services"
)

// AttachOrderToPoolCommandHandler handles the business logic for pool
// membership. The pool's version-checked update serializes concurrent
// attaches so the recomputed value never loses a member.
type AttachOrderToPoolCommandHandler struct {
	uowFactory PoolMembersUoWFactory
	aggregator services.PoolAggregator
}

// NewAttachOrderToPoolCommandHandler creates a handler for attaching orders
// to pools.
func NewAttachOrderToPoolCommandHandler(uowFactory PoolMembersUoWFactory) AttachOrderToPoolCommandHandler {
	return AttachOrderToPoolCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewPoolAggregator(),
	}
}

// Handle processes the attach command. Crossing the pool's minimum value is
// a side effect of the recomputation inside the aggregate.
func (h *AttachOrderToPoolCommandHandler) Handle(ctx context.Context, cmd AttachOrderToPoolCommand) error {
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

	order, err := uow.CustomOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	members, err := uow.CustomOrderRepository().GetAllByPool(ctx, cmd.PoolID())
	if err != nil {
		return err
	}

	if err = h.aggregator.Attach(pool, order, members, time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().Update(ctx, order); err != nil {
		return err
	}
	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
