package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/services"
)

// RecordDebitCommandHandler handles the business logic for spending credit.
// Fails with an InsufficientBalanceError when the available balance does not
// cover the amount; the balance never goes negative.
type RecordDebitCommandHandler struct {
	uowFactory LedgerUoWFactory
	ledger     services.Ledger
}

// NewRecordDebitCommandHandler creates a handler for credit usage.
func NewRecordDebitCommandHandler(uowFactory LedgerUoWFactory) RecordDebitCommandHandler {
	return RecordDebitCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

// Handle processes the debit command.
func (h *RecordDebitCommandHandler) Handle(ctx context.Context, cmd RecordDebitCommand) error {
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

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	entry, err := h.ledger.RecordDebit(cust, cmd.EntryID(), credit.TypeUsageDebit,
		cmd.Amount(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return err
	}

	if cmd.CustomOrderID() != nil {
		if err = entry.LinkCustomOrder(*cmd.CustomOrderID()); err != nil {
			return err
		}
	}

	if err = uow.CreditRepository().Add(ctx, entry); err != nil {
		return err
	}
	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
