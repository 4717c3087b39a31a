package commands

import (
	"errors"
	"fmt"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrTransferCreditsCommandIsNotConstructed = errors.New(
	"TransferCreditsCommand must be created via NewTransferCreditsCommand constructor",
)

// TransferCreditsCommand represents moving credit from one customer to
// another. The transfer writes a linked debit/credit entry pair; both sides
// land or neither does.
type TransferCreditsCommand struct { //nolint:recvcheck //using for validation
	fromCustomerID kernel.UUID
	toCustomerID   kernel.UUID
	amount         kernel.Money
	description    string

	guard guard.ConstructorGuard
}

// NewTransferCreditsCommand creates a command to transfer credit between
// customers. Rejects transfers to the same customer.
func NewTransferCreditsCommand(
	fromCustomerID kernel.UUID,
	toCustomerID kernel.UUID,
	amount kernel.Money,
	description string,
) (TransferCreditsCommand, error) {
	cmd := TransferCreditsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFromCustomerID(fromCustomerID),
		cmd.setToCustomerID(toCustomerID),
		cmd.setAmount(amount),
		cmd.setDescription(description),
	); err != nil {
		return TransferCreditsCommand{}, err
	}

	if fromCustomerID.IsEqual(toCustomerID) {
		return TransferCreditsCommand{}, errs.NewValueIsInvalidErrorWithCause("toCustomerID is invalid",
			fmt.Errorf("customer %s cannot transfer to themselves", fromCustomerID))
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferCreditsCommand) Validate() error {
	return c.guard.Validate(ErrTransferCreditsCommandIsNotConstructed)
}

// FromCustomerID returns the sending customer.
func (c TransferCreditsCommand) FromCustomerID() kernel.UUID {
	return c.fromCustomerID
}

// ToCustomerID returns the receiving customer.
func (c TransferCreditsCommand) ToCustomerID() kernel.UUID {
	return c.toCustomerID
}

// Amount returns the transferred amount.
func (c TransferCreditsCommand) Amount() kernel.Money {
	return c.amount
}

// Description returns the human-readable reason for the transfer.
func (c TransferCreditsCommand) Description() string {
	return c.description
}

func (c *TransferCreditsCommand) setFromCustomerID(fromCustomerID kernel.UUID) error {
	if err := fromCustomerID.Validate(); err != nil {
		return err
	}

	c.fromCustomerID = fromCustomerID
	return nil
}

func (c *TransferCreditsCommand) setToCustomerID(toCustomerID kernel.UUID) error {
	if err := toCustomerID.Validate(); err != nil {
		return err
	}

	c.toCustomerID = toCustomerID
	return nil
}

func (c *TransferCreditsCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	c.amount = amount
	return nil
}

func (c *TransferCreditsCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description is required")
	}

	c.description = description
	return nil
}
