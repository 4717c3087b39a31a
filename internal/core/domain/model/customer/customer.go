package customer

import (
	"errors"
	"fmt"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer represents a marketplace customer as seen by the commerce core:
// an identity plus the cached credit balance. The balance is a derived
// cache (the credit ledger is the authoritative record) and must only be
// mutated through the Ledger domain service, atomically alongside ledger
// entry creation. No other caller may write it.
//
// Customer carries an optimistic-lock version so that concurrent ledger
// operations on the same customer cannot interleave and lose an update: the
// repository update checks the version read and fails with a
// ConcurrentModificationError when it has moved.
type Customer struct {
	id            kernel.UUID
	name          string
	creditBalance kernel.Money
	version       int64

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with a zero balance and initial version.
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	return RestoreCustomer(id, name, kernel.ZeroMoney(), 1)
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name string, creditBalance kernel.Money, version int64) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setVersion(version),
	); err != nil {
		return nil, err
	}

	c.creditBalance = creditBalance
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Balance returns the cached credit balance.
func (c *Customer) Balance() kernel.Money {
	return c.creditBalance
}

// Version returns the optimistic-lock version loaded from persistence.
func (c *Customer) Version() int64 {
	return c.version
}

// HasSufficientBalance reports whether the cached balance covers amount.
func (c *Customer) HasSufficientBalance(amount kernel.Money) bool {
	return c.creditBalance.GreaterThanOrEqual(amount)
}

// ApplyCredit increases the cached balance. Only the Ledger domain service
// may call this, as a side effect of creating a credit ledger entry.
func (c *Customer) ApplyCredit(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	c.creditBalance = c.creditBalance.Add(amount)
	return nil
}

// ApplyDebit decreases the cached balance. Fails with an
// InsufficientBalanceError when the balance does not cover amount; the
// cached balance can never go negative. Only the Ledger domain service may
// call this.
func (c *Customer) ApplyDebit(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	if !c.HasSufficientBalance(amount) {
		return errs.NewInsufficientBalanceError(c.creditBalance.String(), amount.String())
	}

	balance, err := c.creditBalance.Sub(amount)
	if err != nil {
		return err
	}
	c.creditBalance = balance
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"version is invalid",
			fmt.Errorf("%d is not greater than 0", version),
		)
	}
	c.version = version
	return nil
}
