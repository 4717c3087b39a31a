package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrConfirmCustomOrderCommandIsNotConstructed = errors.New(
	"ConfirmCustomOrderCommand must be created via NewConfirmCustomOrderCommand constructor",
)

// ConfirmCustomOrderCommand represents the customer accepting the final
// price of a priced order, making it eligible for pooling.
type ConfirmCustomOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCustomOrderCommand creates a command to confirm a priced order.
func NewConfirmCustomOrderCommand(orderID kernel.UUID) (ConfirmCustomOrderCommand, error) {
	cmd := ConfirmCustomOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmCustomOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCustomOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmCustomOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmCustomOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
