package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/services"
)

// RecordCreditCommandHandler handles the business logic for granting credit.
// The customer's cached balance and the new ledger entry are persisted in
// one transaction; the version-checked customer update serializes concurrent
// balance changes.
type RecordCreditCommandHandler struct {
	uowFactory LedgerUoWFactory
	ledger     services.Ledger
}

// NewRecordCreditCommandHandler creates a handler for credit grants.
func NewRecordCreditCommandHandler(uowFactory LedgerUoWFactory) RecordCreditCommandHandler {
	return RecordCreditCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

// Handle processes the credit command.
func (h *RecordCreditCommandHandler) Handle(ctx context.Context, cmd RecordCreditCommand) error {
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

	entry, err := h.ledger.RecordCredit(cust, cmd.EntryID(), cmd.TransactionType(),
		cmd.Amount(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return err
	}

	if cmd.BonusPercentage() != nil {
		if err = entry.SetBonusPercentage(*cmd.BonusPercentage()); err != nil {
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
