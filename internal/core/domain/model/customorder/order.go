package customorder

import (
	"errors"
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"
)

// ErrCustomOrderIsNotConstructed is returned when a CustomOrder instance was
// not created through NewCustomOrder or RestoreCustomOrder.
var ErrCustomOrderIsNotConstructed = errors.New("CustomOrder must be created via NewCustomOrder constructor")

const (
	// MinQuantity and MaxQuantity bound the number of units per request.
	MinQuantity = 1
	MaxQuantity = 10
)

// ItemDetails groups the free-form attributes of a requested item. All
// fields are optional.
type ItemDetails struct {
	PreferredColor    string
	AlternativeColors []string
	Size              string
	Category          string
	Observations      string
}

// CustomOrder is one customer's request for a specific item, driven through
// the pricing, confirmation, pooling, and delivery workflow by the Status
// state machine.
//
// The order references its supplier and collective order by id only; the
// pool recomputes its total by querying members through the repository, not
// by walking object graphs. collectiveOrderID is non-nil exactly while the
// status is InCollective or later, until a cancellation removes it.
//
// Orders are never physically deleted: Delivered, Cancelled, and Refunded
// are final.
type CustomOrder struct {
	id                kernel.UUID
	customerID        kernel.UUID
	supplierID        *kernel.UUID
	collectiveOrderID *kernel.UUID

	description    string
	details        ItemDetails
	quantity       int
	urgency        Urgency
	estimatedPrice *kernel.Money
	finalPrice     *kernel.Money
	status         Status

	analyzedBy         *kernel.UUID
	cancellationReason string
	createdAt          time.Time
	analyzedAt         *time.Time
	confirmedAt        *time.Time
	cancelledAt        *time.Time
	deliveredAt        *time.Time

	version int64

	guard guard.ConstructorGuard
}

// NewCustomOrder creates a CustomOrder in PendingAnalysis awaiting admin
// pricing. estimatedPrice is the customer's optional expectation; the
// binding finalPrice is set at analysis.
func NewCustomOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	description string,
	details ItemDetails,
	quantity int,
	urgency Urgency,
	estimatedPrice *kernel.Money,
	now time.Time,
) (*CustomOrder, error) {
	o := &CustomOrder{
		status:    StatusPendingAnalysis,
		details:   details,
		createdAt: now,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDescription(description),
		o.setQuantity(quantity),
		o.setUrgency(urgency),
		o.setEstimatedPrice(estimatedPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreCustomOrder reconstructs a CustomOrder from persistence.
func RestoreCustomOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	supplierID *kernel.UUID,
	collectiveOrderID *kernel.UUID,
	description string,
	details ItemDetails,
	quantity int,
	urgency Urgency,
	estimatedPrice *kernel.Money,
	finalPrice *kernel.Money,
	status Status,
	analyzedBy *kernel.UUID,
	cancellationReason string,
	createdAt time.Time,
	analyzedAt *time.Time,
	confirmedAt *time.Time,
	cancelledAt *time.Time,
	deliveredAt *time.Time,
	version int64,
) (*CustomOrder, error) {
	o := &CustomOrder{
		details:            details,
		cancellationReason: cancellationReason,
		createdAt:          createdAt,
		analyzedAt:         analyzedAt,
		confirmedAt:        confirmedAt,
		cancelledAt:        cancelledAt,
		deliveredAt:        deliveredAt,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDescription(description),
		o.setQuantity(quantity),
		o.setUrgency(urgency),
		o.setEstimatedPrice(estimatedPrice),
		o.setVersion(version),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.supplierID = supplierID
	o.collectiveOrderID = collectiveOrderID
	o.finalPrice = finalPrice
	o.analyzedBy = analyzedBy
	return o, nil
}

// Validate ensures the CustomOrder was created through a constructor.
func (o *CustomOrder) Validate() error {
	if o == nil {
		return ErrCustomOrderIsNotConstructed
	}
	return o.guard.Validate(ErrCustomOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *CustomOrder) IsEqual(other *CustomOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *CustomOrder) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the requesting customer.
func (o *CustomOrder) CustomerID() kernel.UUID {
	return o.customerID
}

// SupplierID returns the supplier set at analysis, or nil.
func (o *CustomOrder) SupplierID() *kernel.UUID {
	return o.supplierID
}

// CollectiveOrderID returns the owning pool, or nil while unpooled.
func (o *CustomOrder) CollectiveOrderID() *kernel.UUID {
	return o.collectiveOrderID
}

// Description returns the item description.
func (o *CustomOrder) Description() string {
	return o.description
}

// Details returns the free-form item attributes.
func (o *CustomOrder) Details() ItemDetails {
	return o.details
}

// Quantity returns the requested unit count in [1, 10].
func (o *CustomOrder) Quantity() int {
	return o.quantity
}

// Urgency returns the customer-declared urgency.
func (o *CustomOrder) Urgency() Urgency {
	return o.urgency
}

// EstimatedPrice returns the customer's price expectation, or nil.
func (o *CustomOrder) EstimatedPrice() *kernel.Money {
	return o.estimatedPrice
}

// FinalPrice returns the per-unit price set at analysis, or nil while
// unpriced.
func (o *CustomOrder) FinalPrice() *kernel.Money {
	return o.finalPrice
}

// Status returns the current lifecycle state.
func (o *CustomOrder) Status() Status {
	return o.status
}

// AnalyzedBy returns the admin who priced the order, or nil.
func (o *CustomOrder) AnalyzedBy() *kernel.UUID {
	return o.analyzedBy
}

// CancellationReason returns the recorded reason, or empty.
func (o *CustomOrder) CancellationReason() string {
	return o.cancellationReason
}

// CreatedAt returns the submission time.
func (o *CustomOrder) CreatedAt() time.Time {
	return o.createdAt
}

// AnalyzedAt returns the pricing time, or nil.
func (o *CustomOrder) AnalyzedAt() *time.Time {
	return o.analyzedAt
}

// ConfirmedAt returns the confirmation time, or nil.
func (o *CustomOrder) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// CancelledAt returns the cancellation time, or nil.
func (o *CustomOrder) CancelledAt() *time.Time {
	return o.cancelledAt
}

// DeliveredAt returns the delivery time, or nil.
func (o *CustomOrder) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Version returns the optimistic-lock version loaded from persistence.
func (o *CustomOrder) Version() int64 {
	return o.version
}

// TotalValue returns finalPrice multiplied by quantity, or zero while the
// order is unpriced. This is the amount the order contributes to its pool's
// currentValue.
func (o *CustomOrder) TotalValue() kernel.Money {
	if o.finalPrice == nil {
		return kernel.ZeroMoney()
	}
	return o.finalPrice.MulInt(o.quantity)
}

// Analyze prices the order: sets the final per-unit price and supplier,
// records the acting admin, and moves PendingAnalysis to Priced.
func (o *CustomOrder) Analyze(adminID kernel.UUID, finalPrice kernel.Money, supplierID kernel.UUID, now time.Time) error {
	if err := errors.Join(adminID.Validate(), supplierID.Validate()); err != nil {
		return err
	}
	if !finalPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("finalPrice is invalid",
			fmt.Errorf("%s is not greater than 0", finalPrice.String()))
	}

	next, err := o.status.Apply(ActionAnalyze)
	if err != nil {
		return err
	}

	o.status = next
	o.finalPrice = &finalPrice
	o.supplierID = &supplierID
	o.analyzedBy = &adminID
	o.analyzedAt = &now
	return nil
}

// Confirm records the customer accepting the final price and moves Priced
// to Confirmed. A confirmed order is eligible for pooling.
func (o *CustomOrder) Confirm(now time.Time) error {
	next, err := o.status.Apply(ActionConfirm)
	if err != nil {
		return err
	}

	o.status = next
	o.confirmedAt = &now
	return nil
}

// AttachToPool links the order to a collective order and moves Confirmed to
// InCollective.
func (o *CustomOrder) AttachToPool(poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Apply(ActionAttachToPool)
	if err != nil {
		return err
	}

	o.status = next
	o.collectiveOrderID = &poolID
	return nil
}

// DetachFromPool removes the pool link and reverts InCollective to
// Confirmed, so the order can be re-pooled later.
func (o *CustomOrder) DetachFromPool() error {
	next, err := o.status.Apply(ActionDetachFromPool)
	if err != nil {
		return err
	}

	o.status = next
	o.collectiveOrderID = nil
	return nil
}

// MarkSupplierPaid, MarkShipped, MarkReceived, and MarkDelivered advance the
// order in lockstep with its pool. They are invoked only by the pool cascade
// inside the pool's transaction, never directly by a client action.

// MarkSupplierPaid moves InCollective to SupplierPaid.
func (o *CustomOrder) MarkSupplierPaid() error {
	next, err := o.status.Apply(ActionMarkSupplierPaid)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkShipped moves SupplierPaid to InTransit.
func (o *CustomOrder) MarkShipped() error {
	next, err := o.status.Apply(ActionMarkShipped)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkReceived moves InTransit to Received.
func (o *CustomOrder) MarkReceived() error {
	next, err := o.status.Apply(ActionMarkReceived)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkDelivered moves Received to Delivered and stamps the delivery time.
func (o *CustomOrder) MarkDelivered(now time.Time) error {
	next, err := o.status.Apply(ActionMarkDelivered)
	if err != nil {
		return err
	}
	o.status = next
	o.deliveredAt = &now
	return nil
}

// Cancel moves any non-terminal state to Cancelled, records the reason, and
// removes the pool link. The caller is responsible for notifying the pool so
// it detaches the order and recomputes its total.
func (o *CustomOrder) Cancel(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason is required")
	}

	next, err := o.status.Apply(ActionCancel)
	if err != nil {
		return err
	}

	o.status = next
	o.cancellationReason = reason
	o.cancelledAt = &now
	o.collectiveOrderID = nil
	return nil
}

// Refund moves any non-terminal state to Refunded. It is chosen over Cancel
// when the customer had already been charged; the caller writes the refund
// ledger credit in the same transaction.
func (o *CustomOrder) Refund(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason is required")
	}

	next, err := o.status.Apply(ActionRefund)
	if err != nil {
		return err
	}

	o.status = next
	o.cancellationReason = reason
	o.cancelledAt = &now
	o.collectiveOrderID = nil
	return nil
}

func (o *CustomOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *CustomOrder) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *CustomOrder) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description is required")
	}
	o.description = description
	return nil
}

func (o *CustomOrder) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

func (o *CustomOrder) setUrgency(urgency Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	o.urgency = urgency
	return nil
}

func (o *CustomOrder) setEstimatedPrice(price *kernel.Money) error {
	if price != nil && !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("estimatedPrice is invalid",
			fmt.Errorf("%s is not greater than 0", price.String()))
	}
	o.estimatedPrice = price
	return nil
}

func (o *CustomOrder) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
