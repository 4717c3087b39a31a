package commands

import (
	"errors"
	"fmt"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordCreditCommandIsNotConstructed = errors.New(
	"RecordCreditCommand must be created via NewRecordCreditCommand constructor",
)

// RecordCreditCommand represents granting credit to a customer: a refund or
// one of the bonus types. bonusPercentage annotates bonus entries with the
// rate that produced the amount.
//
// Example:
//
//	cmd, err := NewRecordCreditCommand(kernel.NewUUID(), customerID,
//	    credit.TypeLoyaltyBonus, amount, "loyalty bonus for June", &rate)
//	if err != nil {
//	    return fmt.Errorf("invalid credit data: %w", err)
//	}
//
//	handler := NewRecordCreditCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record credit: %w", err)
//	}
type RecordCreditCommand struct { //nolint:recvcheck //using for validation
	entryID         kernel.UUID
	customerID      kernel.UUID
	transactionType credit.TransactionType
	amount          kernel.Money
	description     string
	bonusPercentage *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordCreditCommand creates a command to grant credit to a customer.
func NewRecordCreditCommand(
	entryID kernel.UUID,
	customerID kernel.UUID,
	transactionType credit.TransactionType,
	amount kernel.Money,
	description string,
	bonusPercentage *decimal.Decimal,
) (RecordCreditCommand, error) {
	cmd := RecordCreditCommand{
		bonusPercentage: bonusPercentage,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setCustomerID(customerID),
		cmd.setTransactionType(transactionType),
		cmd.setAmount(amount),
		cmd.setDescription(description),
	); err != nil {
		return RecordCreditCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCreditCommand) Validate() error {
	return c.guard.Validate(ErrRecordCreditCommandIsNotConstructed)
}

// EntryID returns the unique identifier for the new ledger entry.
func (c RecordCreditCommand) EntryID() kernel.UUID {
	return c.entryID
}

// CustomerID returns the customer receiving the credit.
func (c RecordCreditCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TransactionType returns the kind of credit being granted.
func (c RecordCreditCommand) TransactionType() credit.TransactionType {
	return c.transactionType
}

// Amount returns the credited amount.
func (c RecordCreditCommand) Amount() kernel.Money {
	return c.amount
}

// Description returns the human-readable reason for the credit.
func (c RecordCreditCommand) Description() string {
	return c.description
}

// BonusPercentage returns the bonus rate, or nil for non-bonus credits.
func (c RecordCreditCommand) BonusPercentage() *decimal.Decimal {
	return c.bonusPercentage
}

func (c *RecordCreditCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *RecordCreditCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RecordCreditCommand) setTransactionType(transactionType credit.TransactionType) error {
	if err := transactionType.Validate(); err != nil {
		return err
	}
	if !transactionType.IsCreditSide() {
		return errs.NewValueIsInvalidErrorWithCause("transactionType is invalid",
			fmt.Errorf("%s is not a credit type", transactionType))
	}

	c.transactionType = transactionType
	return nil
}

func (c *RecordCreditCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	c.amount = amount
	return nil
}

func (c *RecordCreditCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description is required")
	}

	c.description = description
	return nil
}
