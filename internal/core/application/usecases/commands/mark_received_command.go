package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrMarkReceivedCommandIsNotConstructed = errors.New(
	"MarkReceivedCommand must be created via NewMarkReceivedCommand constructor",
)

// MarkReceivedCommand represents a pool's goods arriving at the marketplace
// warehouse.
type MarkReceivedCommand struct { //nolint:recvcheck //using for validation
	poolID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReceivedCommand creates a command to record warehouse arrival.
func NewMarkReceivedCommand(poolID kernel.UUID) (MarkReceivedCommand, error) {
	cmd := MarkReceivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPoolID(poolID); err != nil {
		return MarkReceivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkReceivedCommandIsNotConstructed)
}

// PoolID returns the pool that arrived.
func (c MarkReceivedCommand) PoolID() kernel.UUID {
	return c.poolID
}

func (c *MarkReceivedCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}
