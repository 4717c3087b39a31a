package commands

import (
	"errors"
	"fmt"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrRecordCustomerPaymentCommandIsNotConstructed = errors.New(
	"RecordCustomerPaymentCommand must be created via NewRecordCustomerPaymentCommand constructor",
)

// RecordCustomerPaymentCommand represents a member customer paying their
// share of a pool. Payments accumulate into the pool's totalReceived, the
// basis of the profit margin fixed at close.
type RecordCustomerPaymentCommand struct { //nolint:recvcheck //using for validation
	poolID kernel.UUID
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordCustomerPaymentCommand creates a command to record a customer payment.
func NewRecordCustomerPaymentCommand(poolID kernel.UUID, amount kernel.Money) (RecordCustomerPaymentCommand, error) {
	cmd := RecordCustomerPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPoolID(poolID),
		cmd.setAmount(amount),
	); err != nil {
		return RecordCustomerPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCustomerPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordCustomerPaymentCommandIsNotConstructed)
}

// PoolID returns the pool receiving the payment.
func (c RecordCustomerPaymentCommand) PoolID() kernel.UUID {
	return c.poolID
}

// Amount returns the paid amount.
func (c RecordCustomerPaymentCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RecordCustomerPaymentCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}

func (c *RecordCustomerPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	c.amount = amount
	return nil
}
