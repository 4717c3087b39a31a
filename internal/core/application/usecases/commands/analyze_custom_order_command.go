package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"
)

var ErrAnalyzeCustomOrderCommandIsNotConstructed = errors.New(
	"AnalyzeCustomOrderCommand must be created via NewAnalyzeCustomOrderCommand constructor",
)

// AnalyzeCustomOrderCommand represents an admin pricing a pending order:
// setting the binding per-unit price and choosing the supplier to buy from.
type AnalyzeCustomOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	adminID    kernel.UUID
	supplierID kernel.UUID
	finalPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewAnalyzeCustomOrderCommand creates a command to price a pending order.
// The price bound is enforced by the aggregate at handling time.
func NewAnalyzeCustomOrderCommand(
	orderID kernel.UUID,
	adminID kernel.UUID,
	supplierID kernel.UUID,
	finalPrice kernel.Money,
) (AnalyzeCustomOrderCommand, error) {
	cmd := AnalyzeCustomOrderCommand{
		finalPrice: finalPrice,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAdminID(adminID),
		cmd.setSupplierID(supplierID),
	); err != nil {
		return AnalyzeCustomOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AnalyzeCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrAnalyzeCustomOrderCommandIsNotConstructed)
}

// OrderID returns the order being priced.
func (c AnalyzeCustomOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AdminID returns the admin performing the analysis.
func (c AnalyzeCustomOrderCommand) AdminID() kernel.UUID {
	return c.adminID
}

// SupplierID returns the supplier chosen for the order.
func (c AnalyzeCustomOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// FinalPrice returns the binding per-unit price.
func (c AnalyzeCustomOrderCommand) FinalPrice() kernel.Money {
	return c.finalPrice
}

func (c *AnalyzeCustomOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AnalyzeCustomOrderCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *AnalyzeCustomOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}
