package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/core/domain/services"
)

// TransferCreditsCommandHandler handles the business logic for credit
// transfers. Both customers and both ledger entries are persisted in one
// transaction; a failure on either side rolls back the whole transfer.
type TransferCreditsCommandHandler struct {
	uowFactory LedgerUoWFactory
	ledger     services.Ledger
}

// NewTransferCreditsCommandHandler creates a handler for credit transfers.
func NewTransferCreditsCommandHandler(uowFactory LedgerUoWFactory) TransferCreditsCommandHandler {
	return TransferCreditsCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

// Handle processes the transfer command.
func (h *TransferCreditsCommandHandler) Handle(ctx context.Context, cmd TransferCreditsCommand) error {
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

	from, err := uow.CustomerRepository().Get(ctx, cmd.FromCustomerID())
	if err != nil {
		return err
	}

	to, err := uow.CustomerRepository().Get(ctx, cmd.ToCustomerID())
	if err != nil {
		return err
	}

	debitEntry, creditEntry, err := h.ledger.Transfer(from, to,
		kernel.NewUUID(), kernel.NewUUID(), cmd.Amount(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.CreditRepository().Add(ctx, debitEntry); err != nil {
		return err
	}
	if err = uow.CreditRepository().Add(ctx, creditEntry); err != nil {
		return err
	}
	if err = uow.CustomerRepository().Update(ctx, from); err != nil {
		return err
	}
	if err = uow.CustomerRepository().Update(ctx, to); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
