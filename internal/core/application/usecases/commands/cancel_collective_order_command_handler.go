package commands

import (
	"context"
	"time"
)

// CancelCollectiveOrderCommandHandler handles the business logic for pool
// cancellation. The pool transitions to Cancelled and every member is
// detached and reverted to Confirmed in one batch update.
type CancelCollectiveOrderCommandHandler struct {
	uowFactory PoolMembersUoWFactory
}

// NewCancelCollectiveOrderCommandHandler creates a handler for pool cancellation.
func NewCancelCollectiveOrderCommandHandler(uowFactory PoolMembersUoWFactory) CancelCollectiveOrderCommandHandler {
	return CancelCollectiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pool cancellation command. Fails with an
// InvalidStateTransitionError once the supplier has been paid.
func (h *CancelCollectiveOrderCommandHandler) Handle(ctx context.Context, cmd CancelCollectiveOrderCommand) error {
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

	if err = pool.Cancel(cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().DetachAllFromPool(ctx, pool.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
