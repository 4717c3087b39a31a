package commands

import (
	"errors"

	"groupbuy/internal/pkg/guard"
)

var ErrExpireOverdueCreditsCommandIsNotConstructed = errors.New(
	"ExpireOverdueCreditsCommand must be created via NewExpireOverdueCreditsCommand constructor",
)

// ExpireOverdueCreditsCommand represents the periodic sweep that expires
// every active ledger entry whose expiry has passed. Triggered by the
// expiration job, not by clients.
type ExpireOverdueCreditsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireOverdueCreditsCommand creates a command to run the expiration sweep.
func NewExpireOverdueCreditsCommand() ExpireOverdueCreditsCommand {
	return ExpireOverdueCreditsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ExpireOverdueCreditsCommand) Validate() error {
	return c.guard.Validate(ErrExpireOverdueCreditsCommandIsNotConstructed)
}
