package commands

import (
	"context"

	"groupbuy/internal/core/domain/model/customer"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration. New customers start with a zero credit balance; the balance
// only ever changes through ledger commands.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, cust); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
