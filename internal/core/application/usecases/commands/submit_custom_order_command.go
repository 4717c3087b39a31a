package commands

import (
	"errors"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

var ErrSubmitCustomOrderCommandIsNotConstructed = errors.New(
	"SubmitCustomOrderCommand must be created via NewSubmitCustomOrderCommand constructor",
)

// SubmitCustomOrderCommand represents a customer's request for a specific
// item. The order enters the workflow in PendingAnalysis and waits for an
// admin to price it.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitCustomOrderCommand(orderID, customerID,
//	    "wireless headphones", customorder.ItemDetails{PreferredColor: "black"},
//	    2, customorder.UrgencyNormal, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitCustomOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitCustomOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	description    string
	details        customorder.ItemDetails
	quantity       int
	urgency        customorder.Urgency
	estimatedPrice *kernel.Money

	guard guard.ConstructorGuard
}

// NewSubmitCustomOrderCommand creates a command to submit a new custom order.
// Validates identifiers, requires a description, and bounds the quantity and
// urgency; the optional estimated price is the customer's expectation only.
func NewSubmitCustomOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	description string,
	details customorder.ItemDetails,
	quantity int,
	urgency customorder.Urgency,
	estimatedPrice *kernel.Money,
) (SubmitCustomOrderCommand, error) {
	cmd := SubmitCustomOrderCommand{
		details:        details,
		quantity:       quantity,
		urgency:        urgency,
		estimatedPrice: estimatedPrice,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDescription(description),
	); err != nil {
		return SubmitCustomOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCustomOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c SubmitCustomOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer.
func (c SubmitCustomOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Description returns the item description.
func (c SubmitCustomOrderCommand) Description() string {
	return c.description
}

// Details returns the free-form item attributes.
func (c SubmitCustomOrderCommand) Details() customorder.ItemDetails {
	return c.details
}

// Quantity returns the requested unit count.
func (c SubmitCustomOrderCommand) Quantity() int {
	return c.quantity
}

// Urgency returns the customer-declared urgency.
func (c SubmitCustomOrderCommand) Urgency() customorder.Urgency {
	return c.urgency
}

// EstimatedPrice returns the customer's price expectation, or nil.
func (c SubmitCustomOrderCommand) EstimatedPrice() *kernel.Money {
	return c.estimatedPrice
}

func (c *SubmitCustomOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitCustomOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitCustomOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description is required")
	}

	c.description = description
	return nil
}
