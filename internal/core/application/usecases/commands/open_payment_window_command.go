package commands

import (
	"errors"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrOpenPaymentWindowCommandIsNotConstructed = errors.New(
	"OpenPaymentWindowCommand must be created via NewOpenPaymentWindowCommand constructor",
)

// OpenPaymentWindowCommand represents starting the customer payment
// collection period for a pool that has reached its minimum.
type OpenPaymentWindowCommand struct { //nolint:recvcheck //using for validation
	poolID   kernel.UUID
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewOpenPaymentWindowCommand creates a command to open the payment window.
// The aggregate rejects deadlines that are not in the future at handling time.
func NewOpenPaymentWindowCommand(poolID kernel.UUID, deadline time.Time) (OpenPaymentWindowCommand, error) {
	cmd := OpenPaymentWindowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPoolID(poolID),
		cmd.setDeadline(deadline),
	); err != nil {
		return OpenPaymentWindowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenPaymentWindowCommand) Validate() error {
	return c.guard.Validate(ErrOpenPaymentWindowCommandIsNotConstructed)
}

// PoolID returns the pool opening its payment window.
func (c OpenPaymentWindowCommand) PoolID() kernel.UUID {
	return c.poolID
}

// Deadline returns the end of the payment collection period.
func (c OpenPaymentWindowCommand) Deadline() time.Time {
	return c.deadline
}

func (c *OpenPaymentWindowCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}

func (c *OpenPaymentWindowCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline is required")
	}

	c.deadline = deadline
	return nil
}
