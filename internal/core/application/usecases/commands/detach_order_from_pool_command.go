package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrDetachOrderFromPoolCommandIsNotConstructed = errors.New(
	"DetachOrderFromPoolCommand must be created via NewDetachOrderFromPoolCommand constructor",
)

// DetachOrderFromPoolCommand represents removing a member order from a pool
// that is still Open, reverting the order to Confirmed.
type DetachOrderFromPoolCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	poolID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDetachOrderFromPoolCommand creates a command to detach an order from a pool.
func NewDetachOrderFromPoolCommand(orderID kernel.UUID, poolID kernel.UUID) (DetachOrderFromPoolCommand, error) {
	cmd := DetachOrderFromPoolCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPoolID(poolID),
	); err != nil {
		return DetachOrderFromPoolCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DetachOrderFromPoolCommand) Validate() error {
	return c.guard.Validate(ErrDetachOrderFromPoolCommandIsNotConstructed)
}

// OrderID returns the member order being detached.
func (c DetachOrderFromPoolCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PoolID returns the pool the order leaves.
func (c DetachOrderFromPoolCommand) PoolID() kernel.UUID {
	return c.poolID
}

func (c *DetachOrderFromPoolCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DetachOrderFromPoolCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}
