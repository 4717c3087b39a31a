package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrMarkShippedCommandIsNotConstructed = errors.New(
	"MarkShippedCommand must be created via NewMarkShippedCommand constructor",
)

// MarkShippedCommand represents the supplier dispatching a pool's goods
// under a carrier tracking code.
type MarkShippedCommand struct { //nolint:recvcheck //using for validation
	poolID       kernel.UUID
	trackingCode string

	guard guard.ConstructorGuard
}

// NewMarkShippedCommand creates a command to record a pool shipment.
func NewMarkShippedCommand(poolID kernel.UUID, trackingCode string) (MarkShippedCommand, error) {
	cmd := MarkShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPoolID(poolID),
		cmd.setTrackingCode(trackingCode),
	); err != nil {
		return MarkShippedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkShippedCommandIsNotConstructed)
}

// PoolID returns the pool being shipped.
func (c MarkShippedCommand) PoolID() kernel.UUID {
	return c.poolID
}

// TrackingCode returns the carrier tracking code.
func (c MarkShippedCommand) TrackingCode() string {
	return c.trackingCode
}

func (c *MarkShippedCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}

func (c *MarkShippedCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode is required")
	}

	c.trackingCode = trackingCode
	return nil
}
