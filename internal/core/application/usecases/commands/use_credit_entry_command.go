package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrUseCreditEntryCommandIsNotConstructed = errors.New(
	"UseCreditEntryCommand must be created via NewUseCreditEntryCommand constructor",
)

// UseCreditEntryCommand represents consuming a specific active ledger entry,
// marking it Used with a usage timestamp.
type UseCreditEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUseCreditEntryCommand creates a command to consume a ledger entry.
func NewUseCreditEntryCommand(entryID kernel.UUID) (UseCreditEntryCommand, error) {
	cmd := UseCreditEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEntryID(entryID); err != nil {
		return UseCreditEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UseCreditEntryCommand) Validate() error {
	return c.guard.Validate(ErrUseCreditEntryCommandIsNotConstructed)
}

// EntryID returns the entry being consumed.
func (c UseCreditEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c *UseCreditEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}
