package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrCancelCollectiveOrderCommandIsNotConstructed = errors.New(
	"CancelCollectiveOrderCommand must be created via NewCancelCollectiveOrderCommand constructor",
)

// CancelCollectiveOrderCommand represents aborting a pool before its
// supplier is paid. Every member order reverts to Confirmed and becomes
// eligible for a future pool.
type CancelCollectiveOrderCommand struct { //nolint:recvcheck //using for validation
	poolID kernel.UUID
	reason string

	guard guard.ConstructorGuard
}

// NewCancelCollectiveOrderCommand creates a command to cancel a pool.
func NewCancelCollectiveOrderCommand(poolID kernel.UUID, reason string) (CancelCollectiveOrderCommand, error) {
	cmd := CancelCollectiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPoolID(poolID),
		cmd.setReason(reason),
	); err != nil {
		return CancelCollectiveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelCollectiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelCollectiveOrderCommandIsNotConstructed)
}

// PoolID returns the pool being cancelled.
func (c CancelCollectiveOrderCommand) PoolID() kernel.UUID {
	return c.poolID
}

// Reason returns the cancellation reason.
func (c CancelCollectiveOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelCollectiveOrderCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}

func (c *CancelCollectiveOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason is required")
	}

	c.reason = reason
	return nil
}
