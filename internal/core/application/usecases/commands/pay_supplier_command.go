package commands

import (
	"errors"
	"fmt"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrPaySupplierCommandIsNotConstructed = errors.New(
	"PaySupplierCommand must be created via NewPaySupplierCommand constructor",
)

// PaySupplierCommand represents the marketplace anticipating payment to the
// supplier, committing the pool to the purchase.
type PaySupplierCommand struct { //nolint:recvcheck //using for validation
	poolID kernel.UUID
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewPaySupplierCommand creates a command to record the supplier payment.
func NewPaySupplierCommand(poolID kernel.UUID, amount kernel.Money) (PaySupplierCommand, error) {
	cmd := PaySupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPoolID(poolID),
		cmd.setAmount(amount),
	); err != nil {
		return PaySupplierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PaySupplierCommand) Validate() error {
	return c.guard.Validate(ErrPaySupplierCommandIsNotConstructed)
}

// PoolID returns the pool whose supplier is being paid.
func (c PaySupplierCommand) PoolID() kernel.UUID {
	return c.poolID
}

// Amount returns the anticipated amount paid to the supplier.
func (c PaySupplierCommand) Amount() kernel.Money {
	return c.amount
}

func (c *PaySupplierCommand) setPoolID(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	c.poolID = poolID
	return nil
}

func (c *PaySupplierCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	c.amount = amount
	return nil
}
