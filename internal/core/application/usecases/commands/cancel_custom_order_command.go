package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrCancelCustomOrderCommandIsNotConstructed = errors.New(
	"CancelCustomOrderCommand must be created via NewCancelCustomOrderCommand constructor",
)

// CancelCustomOrderCommand represents a request to abort an order anywhere
// before delivery. When refundAmount is set the customer had already been
// charged: the order ends Refunded and a refund credit is written to the
// ledger in the same transaction. Without it the order ends Cancelled and no
// ledger entry is created.
type CancelCustomOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	reason       string
	refundAmount *kernel.Money

	guard guard.ConstructorGuard
}

// NewCancelCustomOrderCommand creates a command to cancel an order.
// refundAmount is nil when no charge was collected.
func NewCancelCustomOrderCommand(orderID kernel.UUID, reason string, refundAmount *kernel.Money) (CancelCustomOrderCommand, error) {
	cmd := CancelCustomOrderCommand{
		refundAmount: refundAmount,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelCustomOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelCustomOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelCustomOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the cancellation reason.
func (c CancelCustomOrderCommand) Reason() string {
	return c.reason
}

// RefundAmount returns the charge to refund, or nil when none was collected.
func (c CancelCustomOrderCommand) RefundAmount() *kernel.Money {
	return c.refundAmount
}

func (c *CancelCustomOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelCustomOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason is required")
	}

	c.reason = reason
	return nil
}
