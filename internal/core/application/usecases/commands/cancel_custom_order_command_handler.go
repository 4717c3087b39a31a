package commands

import (
	"context"
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/core/domain/services"
)

// CancelCustomOrderCommandHandler handles the business logic for order
// cancellation. Three things can happen in the one transaction: the order
// transitions to Cancelled or Refunded, its pool (if any) recomputes the
// pooled value without it, and a collected charge comes back as a refund
// ledger credit.
type CancelCustomOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.Ledger
	aggregator services.PoolAggregator
}

// NewCancelCustomOrderCommandHandler creates a handler for order cancellation.
func NewCancelCustomOrderCommandHandler(uowFactory UoWFactory) CancelCustomOrderCommandHandler {
	return CancelCustomOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
		aggregator: services.NewPoolAggregator(),
	}
}

// Handle processes the cancellation command.
func (h *CancelCustomOrderCommandHandler) Handle(ctx context.Context, cmd CancelCustomOrderCommand) error {
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

	order, err := uow.CustomOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	poolID := order.CollectiveOrderID()

	if cmd.RefundAmount() != nil {
		if err = order.Refund(cmd.Reason(), now); err != nil {
			return err
		}
	} else {
		if err = order.Cancel(cmd.Reason(), now); err != nil {
			return err
		}
	}

	if err = uow.CustomOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if cmd.RefundAmount() != nil {
		cust, custErr := uow.CustomerRepository().Get(ctx, order.CustomerID())
		if custErr != nil {
			return custErr
		}

		description := fmt.Sprintf("refund for order %s", order.ID())
		entry, entryErr := h.ledger.RecordCredit(cust, kernel.NewUUID(),
			credit.TypeRefund, *cmd.RefundAmount(), description, now)
		if entryErr != nil {
			return entryErr
		}
		if err = entry.LinkCustomOrder(order.ID()); err != nil {
			return err
		}

		if err = uow.CreditRepository().Add(ctx, entry); err != nil {
			return err
		}
		if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
			return err
		}
	}

	if poolID != nil {
		pool, poolErr := uow.CollectiveOrderRepository().Get(ctx, *poolID)
		if poolErr != nil {
			return poolErr
		}

		members, membersErr := uow.CustomOrderRepository().GetAllByPool(ctx, *poolID)
		if membersErr != nil {
			return membersErr
		}

		remaining := members[:0]
		for _, member := range members {
			if !member.IsEqual(order) {
				remaining = append(remaining, member)
			}
		}

		if err = h.aggregator.RemoveCancelled(pool, remaining, now); err != nil {
			return err
		}
		if err = uow.CollectiveOrderRepository().Update(ctx, pool); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
