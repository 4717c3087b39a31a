package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrCloseCollectiveOrderCommandIsNotConstructed = errors.New(
	"CloseCollectiveOrderCommand must be created via NewCloseCollectiveOrderCommand constructor",
)

// CloseCollectiveOrderCommand represents an admin settling a delivered pool,
// fixing its profit margin.
type CloseCollectiveOrderCommand struct { //nolint:recvcheck //using for validation
	poolID  kernel.UUID
	adminID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseCollectiveOrderCommand creates a command to close a delivered pool.
func NewCloseCollectiveOrderCommand(poolID kernel.UUID, adminID kernel.UUID) (CloseCollectiveOrderCommand, error) {
	cmd := CloseCollectiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPoolID(poolID),
		cmd.setAdminID(adminID),
	); err != nil {
		return CloseCollectiveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseCollectiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseCollectiveOrderCommandIsNotConstructed)
}

// PoolID returns the pool being closed.
func (c CloseCollectiveOrderCommand) PoolID() kernel.UUID {
	return c.poolID
}

// AdminID returns the admin closing the pool.
func (c CloseCollectiveOrderCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c *CloseCollectiveOrderCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}

func (c *CloseCollectiveOrderCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}
