package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/core/domain/services"
)

// ExpireOverdueCreditsCommandHandler handles the business logic for the
// expiration sweep. Each overdue entry is flipped to Expired and a matching
// expiration debit is written, keeping every customer's cached balance equal
// to their ledger sum. Customers are processed in separate transactions, so
// a failure rolls back one customer and the sweep continues with the rest.
type ExpireOverdueCreditsCommandHandler struct {
	uowFactory LedgerUoWFactory
	ledger     services.Ledger
}

// NewExpireOverdueCreditsCommandHandler creates a handler for the expiration sweep.
func NewExpireOverdueCreditsCommandHandler(uowFactory LedgerUoWFactory) ExpireOverdueCreditsCommandHandler {
	return ExpireOverdueCreditsCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

// Handle processes the sweep. The overdue set is read once, grouped by
// customer, and each customer is expired in their own transaction. Errors
// are collected per customer and joined; a failed customer is retried by
// the next run, which re-reads the overdue set.
func (h *ExpireOverdueCreditsCommandHandler) Handle(ctx context.Context, cmd ExpireOverdueCreditsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	overdue, err := h.uowFactory.Create().CreditRepository().GetAllOverdue(ctx, now)
	if err != nil {
		return err
	}

	customerIDs := make([]kernel.UUID, 0, len(overdue))
	byCustomer := make(map[kernel.UUID][]*credit.Transaction)
	for _, entry := range overdue {
		if _, ok := byCustomer[entry.CustomerID()]; !ok {
			customerIDs = append(customerIDs, entry.CustomerID())
		}
		byCustomer[entry.CustomerID()] = append(byCustomer[entry.CustomerID()], entry)
	}

	var sweepErrs []error
	for _, customerID := range customerIDs {
		if err := h.expireForCustomer(ctx, customerID, byCustomer[customerID], now); err != nil {
			sweepErrs = append(sweepErrs, fmt.Errorf("customer %s: %w", customerID, err))
		}
	}

	return errors.Join(sweepErrs...)
}

func (h *ExpireOverdueCreditsCommandHandler) expireForCustomer(
	ctx context.Context,
	customerID kernel.UUID,
	entries []*credit.Transaction,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().Get(ctx, customerID)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		debitEntry, err := h.ledger.ExpireEntry(cust, entry, kernel.NewUUID(), now)
		if err != nil {
			return err
		}

		if err = uow.CreditRepository().Update(ctx, entry); err != nil {
			return err
		}
		if debitEntry != nil {
			if err = uow.CreditRepository().Add(ctx, debitEntry); err != nil {
				return err
			}
		}
	}

	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
