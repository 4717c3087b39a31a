package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/customorder"
)

// PaySupplierCommandHandler handles the business logic for supplier payment.
// The pool transitions to SupplierPaid and every member order is rewritten
// to the same status in one batch update inside the same transaction.
type PaySupplierCommandHandler struct {
	uowFactory PoolMembersUoWFactory
}

// NewPaySupplierCommandHandler creates a handler for supplier payments.
func NewPaySupplierCommandHandler(uowFactory PoolMembersUoWFactory) PaySupplierCommandHandler {
	return PaySupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier payment command.
func (h *PaySupplierCommandHandler) Handle(ctx context.Context, cmd PaySupplierCommand) error {
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

	if err = pool.PaySupplier(cmd.Amount(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().UpdateStatusForPool(ctx, pool.ID(), customorder.StatusSupplierPaid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
