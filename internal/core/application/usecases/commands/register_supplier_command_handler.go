package commands

import (
	"context"

	"groupbuy/internal/core/domain/model/supplier"
)

// RegisterSupplierCommandHandler handles the business logic for supplier
// registration.
type RegisterSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewRegisterSupplierCommandHandler creates a handler for supplier registration.
func NewRegisterSupplierCommandHandler(uowFactory SupplierUoWFactory) RegisterSupplierCommandHandler {
	return RegisterSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier registration command. The supplier aggregate
// rejects non-positive minimum order values, fees outside [0, 100], and
// delivery windows outside [1, 365].
func (h *RegisterSupplierCommandHandler) Handle(ctx context.Context, cmd RegisterSupplierCommand) error {
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

	s, err := supplier.NewSupplier(cmd.SupplierID(), cmd.Name(),
		cmd.MinimumOrderValue(), cmd.AdminFeePercent(), cmd.DeliveryTimeDays())
	if err != nil {
		return err
	}

	if err = uow.SupplierRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
