package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a pool's goods handed over to the member
// customers.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	poolID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to record pool delivery.
func NewMarkDeliveredCommand(poolID kernel.UUID) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPoolID(poolID); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// PoolID returns the delivered pool.
func (c MarkDeliveredCommand) PoolID() kernel.UUID {
	return c.poolID
}

func (c *MarkDeliveredCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}
