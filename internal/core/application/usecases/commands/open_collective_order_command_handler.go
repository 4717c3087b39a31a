package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/services"
)

// OpenCollectiveOrderCommandHandler handles the business logic for opening a
// pool. Reads the supplier for its minimum order value, creates the pool,
// and attaches every confirmed unpooled order of that supplier so the pool
// starts with the waiting demand already counted.
type OpenCollectiveOrderCommandHandler struct {
	uowFactory OpenPoolUoWFactory
	aggregator services.PoolAggregator
}

// NewOpenCollectiveOrderCommandHandler creates a handler for opening pools.
func NewOpenCollectiveOrderCommandHandler(uowFactory OpenPoolUoWFactory) OpenCollectiveOrderCommandHandler {
	return OpenCollectiveOrderCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewPoolAggregator(),
	}
}

// Handle processes the pool opening command. The initial sweep can cross the
// minimum immediately when enough confirmed orders were waiting.
func (h *OpenCollectiveOrderCommandHandler) Handle(ctx context.Context, cmd OpenCollectiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	pool, err := collectiveorder.NewCollectiveOrder(cmd.PoolID(), s.ID(), s.MinimumOrderValue(), now)
	if err != nil {
		return err
	}

	waiting, err := uow.CustomOrderRepository().GetAllConfirmedBySupplier(ctx, s.ID())
	if err != nil {
		return err
	}

	members := make([]*customorder.CustomOrder, 0, len(waiting))
	for _, order := range waiting {
		if pool.Status() != collectiveorder.StatusOpen {
			break
		}
		if err = h.aggregator.Attach(pool, order, members, now); err != nil {
			return err
		}
		members = append(members, order)

		if err = uow.CustomOrderRepository().Update(ctx, order); err != nil {
			return err
		}
	}

	if err = uow.CollectiveOrderRepository().Add(ctx, pool); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
