package commands

import (
	"context"
)

// RecordCustomerPaymentCommandHandler handles the business logic for
// customer payments on a pool. Legal once the payment window opens and
// until the pool is settled.
type RecordCustomerPaymentCommandHandler struct {
	uowFactory PoolUoWFactory
}

// NewRecordCustomerPaymentCommandHandler creates a handler for customer payments.
func NewRecordCustomerPaymentCommandHandler(uowFactory PoolUoWFactory) RecordCustomerPaymentCommandHandler {
	return RecordCustomerPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
func (h *RecordCustomerPaymentCommandHandler) Handle(ctx context.Context, cmd RecordCustomerPaymentCommand) error {
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

	if err = pool.RecordCustomerPayment(cmd.Amount()); err != nil {
		return err
	}

	if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
