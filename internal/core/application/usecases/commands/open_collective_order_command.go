package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrOpenCollectiveOrderCommandIsNotConstructed = errors.New(
	"OpenCollectiveOrderCommand must be created via NewOpenCollectiveOrderCommand constructor",
)

// OpenCollectiveOrderCommand represents opening a new pool for a supplier.
// The pool's threshold is the supplier's minimum order value, and every
// confirmed unpooled order of that supplier is swept in at opening.
type OpenCollectiveOrderCommand struct { //nolint:recvcheck //using for validation
	poolID     kernel.UUID
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenCollectiveOrderCommand creates a command to open a pool.
func NewOpenCollectiveOrderCommand(poolID kernel.UUID, supplierID kernel.UUID) (OpenCollectiveOrderCommand, error) {
	cmd := OpenCollectiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPoolID(poolID),
		cmd.setSupplierID(supplierID),
	); err != nil {
		return OpenCollectiveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenCollectiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrOpenCollectiveOrderCommandIsNotConstructed)
}

// PoolID returns the unique identifier for the new pool.
func (c OpenCollectiveOrderCommand) PoolID() kernel.UUID {
	return c.poolID
}

// SupplierID returns the supplier the pool buys from.
func (c OpenCollectiveOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

func (c *OpenCollectiveOrderCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}

func (c *OpenCollectiveOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}
