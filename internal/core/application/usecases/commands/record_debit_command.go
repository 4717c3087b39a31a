package commands

import (
	"errors"
	"fmt"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrRecordDebitCommandIsNotConstructed = errors.New(
	"RecordDebitCommand must be created via NewRecordDebitCommand constructor",
)

// RecordDebitCommand represents spending a customer's credit balance,
// typically against a custom order charge. The optional order reference
// links the usage entry to the order it paid for.
type RecordDebitCommand struct { //nolint:recvcheck //using for validation
	entryID       kernel.UUID
	customerID    kernel.UUID
	amount        kernel.Money
	description   string
	customOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordDebitCommand creates a command to debit a customer's balance.
func NewRecordDebitCommand(
	entryID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	description string,
	customOrderID *kernel.UUID,
) (RecordDebitCommand, error) {
	cmd := RecordDebitCommand{
		customOrderID: customOrderID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setCustomerID(customerID),
		cmd.setAmount(amount),
		cmd.setDescription(description),
	); err != nil {
		return RecordDebitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDebitCommand) Validate() error {
	return c.guard.Validate(ErrRecordDebitCommandIsNotConstructed)
}

// EntryID returns the unique identifier for the new ledger entry.
func (c RecordDebitCommand) EntryID() kernel.UUID {
	return c.entryID
}

// CustomerID returns the customer being debited.
func (c RecordDebitCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Amount returns the debited amount.
func (c RecordDebitCommand) Amount() kernel.Money {
	return c.amount
}

// Description returns the human-readable reason for the debit.
func (c RecordDebitCommand) Description() string {
	return c.description
}

// CustomOrderID returns the order the debit paid for, or nil.
func (c RecordDebitCommand) CustomOrderID() *kernel.UUID {
	return c.customOrderID
}

func (c *RecordDebitCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *RecordDebitCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RecordDebitCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	c.amount = amount
	return nil
}

func (c *RecordDebitCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description is required")
	}

	c.description = description
	return nil
}
