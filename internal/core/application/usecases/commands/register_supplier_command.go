package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRegisterSupplierCommandIsNotConstructed = errors.New(
	"RegisterSupplierCommand must be created via NewRegisterSupplierCommand constructor",
)

// RegisterSupplierCommand represents a request to register a new supplier
// with its pooling terms: minimum order value, admin fee, and delivery window.
type RegisterSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID        kernel.UUID
	name              string
	minimumOrderValue kernel.Money
	adminFeePercent   decimal.Decimal
	deliveryTimeDays  int

	guard guard.ConstructorGuard
}

// NewRegisterSupplierCommand creates a command to register a new supplier.
// The supplier aggregate validates the terms; the command only checks the
// identifier so a malformed request fails before a transaction starts.
func NewRegisterSupplierCommand(
	supplierID kernel.UUID,
	name string,
	minimumOrderValue kernel.Money,
	adminFeePercent decimal.Decimal,
	deliveryTimeDays int,
) (RegisterSupplierCommand, error) {
	cmd := RegisterSupplierCommand{
		name:              name,
		minimumOrderValue: minimumOrderValue,
		adminFeePercent:   adminFeePercent,
		deliveryTimeDays:  deliveryTimeDays,
		guard:             guard.NewConstructorGuard(),
	}

	if err := cmd.setSupplierID(supplierID); err != nil {
		return RegisterSupplierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterSupplierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSupplierCommandIsNotConstructed)
}

// SupplierID returns the unique identifier for the new supplier.
func (c RegisterSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the supplier's display name.
func (c RegisterSupplierCommand) Name() string {
	return c.name
}

// MinimumOrderValue returns the pooled value threshold the supplier requires.
func (c RegisterSupplierCommand) MinimumOrderValue() kernel.Money {
	return c.minimumOrderValue
}

// AdminFeePercent returns the marketplace fee percentage.
func (c RegisterSupplierCommand) AdminFeePercent() decimal.Decimal {
	return c.adminFeePercent
}

// DeliveryTimeDays returns the supplier's promised delivery window in days.
func (c RegisterSupplierCommand) DeliveryTimeDays() int {
	return c.deliveryTimeDays
}

func (c *RegisterSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}
