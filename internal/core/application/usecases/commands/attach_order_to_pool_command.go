package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrAttachOrderToPoolCommandIsNotConstructed = errors.New(
	"AttachOrderToPoolCommand must be created via NewAttachOrderToPoolCommand constructor",
)

// AttachOrderToPoolCommand represents adding a confirmed order to an open
// collective order of the same supplier.
type AttachOrderToPoolCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	poolID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachOrderToPoolCommand creates a command to attach an order to a pool.
func NewAttachOrderToPoolCommand(orderID kernel.UUID, poolID kernel.UUID) (AttachOrderToPoolCommand, error) {
	cmd := AttachOrderToPoolCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPoolID(poolID),
	); err != nil {
		return AttachOrderToPoolCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachOrderToPoolCommand) Validate() error {
	return c.guard.Validate(ErrAttachOrderToPoolCommandIsNotConstructed)
}

// OrderID returns the order being attached.
func (c AttachOrderToPoolCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PoolID returns the receiving collective order.
func (c AttachOrderToPoolCommand) PoolID() kernel.UUID {
	return c.poolID
}

func (c *AttachOrderToPoolCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachOrderToPoolCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}
