package commands

import (
	"context"
	"time"

	"groupbuy/internal/core/domain/services"
)

// UseCreditEntryCommandHandler handles the business logic for consuming a
// ledger entry. Fails with a CreditExpiredError when the entry's expiry has
// lapsed, even if the expiration sweep has not flagged it yet.
type UseCreditEntryCommandHandler struct {
	uowFactory LedgerUoWFactory
	ledger     services.Ledger
}

// NewUseCreditEntryCommandHandler creates a handler for entry consumption.
func NewUseCreditEntryCommandHandler(uowFactory LedgerUoWFactory) UseCreditEntryCommandHandler {
	return UseCreditEntryCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

// Handle processes the consumption command.
func (h *UseCreditEntryCommandHandler) Handle(ctx context.Context, cmd UseCreditEntryCommand) error {
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

	entry, err := uow.CreditRepository().Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	if err = h.ledger.UseEntry(entry, time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CreditRepository().Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
