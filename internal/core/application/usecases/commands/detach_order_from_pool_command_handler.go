package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/services"
)

// DetachOrderFromPoolCommandHandler handles the business logic for leaving a
// pool. Once the pool has reached its minimum, membership is frozen and the
// aggregator rejects the detach.
type DetachOrderFromPoolCommandHandler struct {
	uowFactory PoolMembersUoWFactory
	aggregator services.PoolAggregator
}

// NewDetachOrderFromPoolCommandHandler creates a handler for detaching
// orders from pools.
func NewDetachOrderFromPoolCommandHandler(uowFactory PoolMembersUoWFactory) DetachOrderFromPoolCommandHandler {
	return DetachOrderFromPoolCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewPoolAggregator(),
	}
}

// Handle processes the detach command.
func (h *DetachOrderFromPoolCommandHandler) Handle(ctx context.Context, cmd DetachOrderFromPoolCommand) error {
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

	if err = h.aggregator.Detach(pool, order, members, time.Now().UTC()); err != nil {
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
