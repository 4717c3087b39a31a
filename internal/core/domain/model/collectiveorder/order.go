package collectiveorder

import (
	"errors"
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCollectiveOrderIsNotConstructed is returned when a CollectiveOrder
// instance was not created through NewCollectiveOrder or
// RestoreCollectiveOrder.
var ErrCollectiveOrderIsNotConstructed = errors.New("CollectiveOrder must be created via NewCollectiveOrder constructor")

// paymentDeadlineWarning is how far ahead of the payment deadline a pool is
// reported as near-overdue for the deadline sweep.
const paymentDeadlineWarning = 24 * time.Hour

// CollectiveOrder pools confirmed custom orders that share one supplier and
// drives them through payment, shipment, and delivery as a unit.
//
// currentValue is always recomputed from the member orders' totals via
// Recalculate; it is never incremented in place, so concurrent attaches and
// detaches cannot make it drift. Members are referenced by foreign key on
// the CustomOrder side; the pool itself holds no member list.
//
// The pool is one unit of optimistic concurrency: every mutation goes
// through a version-checked write, and two concurrent updates cannot both
// win.
type CollectiveOrder struct {
	id         kernel.UUID
	supplierID kernel.UUID

	minimumValue kernel.Money
	currentValue kernel.Money
	status       Status

	paymentDeadline     *time.Time
	supplierPaymentDate *time.Time
	anticipatedAmount   kernel.Money
	totalReceived       kernel.Money
	profitMargin        decimal.Decimal
	trackingCode        string
	closedBy            *kernel.UUID

	cancellationReason    string
	createdAt             time.Time
	minimumReachedAt      *time.Time
	paymentWindowOpenedAt *time.Time
	shippedAt             *time.Time
	receivedAt            *time.Time
	deliveredAt           *time.Time
	closedAt              *time.Time
	cancelledAt           *time.Time

	version int64

	guard guard.ConstructorGuard
}

// NewCollectiveOrder opens a pool for a supplier with the supplier's
// minimum order value as the threshold.
func NewCollectiveOrder(id kernel.UUID, supplierID kernel.UUID, minimumValue kernel.Money, now time.Time) (*CollectiveOrder, error) {
	p := &CollectiveOrder{
		status:    StatusOpen,
		createdAt: now,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSupplierID(supplierID),
		p.setMinimumValue(minimumValue),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreCollectiveOrder reconstructs a pool from persistence.
func RestoreCollectiveOrder(
	id kernel.UUID,
	supplierID kernel.UUID,
	minimumValue kernel.Money,
	currentValue kernel.Money,
	status Status,
	paymentDeadline *time.Time,
	supplierPaymentDate *time.Time,
	anticipatedAmount kernel.Money,
	totalReceived kernel.Money,
	profitMargin decimal.Decimal,
	trackingCode string,
	closedBy *kernel.UUID,
	cancellationReason string,
	createdAt time.Time,
	minimumReachedAt *time.Time,
	paymentWindowOpenedAt *time.Time,
	shippedAt *time.Time,
	receivedAt *time.Time,
	deliveredAt *time.Time,
	closedAt *time.Time,
	cancelledAt *time.Time,
	version int64,
) (*CollectiveOrder, error) {
	p := &CollectiveOrder{
		currentValue:          currentValue,
		paymentDeadline:       paymentDeadline,
		supplierPaymentDate:   supplierPaymentDate,
		anticipatedAmount:     anticipatedAmount,
		totalReceived:         totalReceived,
		profitMargin:          profitMargin,
		trackingCode:          trackingCode,
		closedBy:              closedBy,
		cancellationReason:    cancellationReason,
		createdAt:             createdAt,
		minimumReachedAt:      minimumReachedAt,
		paymentWindowOpenedAt: paymentWindowOpenedAt,
		shippedAt:             shippedAt,
		receivedAt:            receivedAt,
		deliveredAt:           deliveredAt,
		closedAt:              closedAt,
		cancelledAt:           cancelledAt,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSupplierID(supplierID),
		p.setMinimumValue(minimumValue),
		p.setVersion(version),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.status = status
	return p, nil
}

// Validate ensures the CollectiveOrder was created through a constructor.
func (p *CollectiveOrder) Validate() error {
	if p == nil {
		return ErrCollectiveOrderIsNotConstructed
	}
	return p.guard.Validate(ErrCollectiveOrderIsNotConstructed)
}

// IsEqual compares two pools by their unique identifiers.
func (p *CollectiveOrder) IsEqual(other *CollectiveOrder) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pool's unique identifier.
func (p *CollectiveOrder) ID() kernel.UUID {
	return p.id
}

// SupplierID returns the supplier the pool buys from.
func (p *CollectiveOrder) SupplierID() kernel.UUID {
	return p.supplierID
}

// MinimumValue returns the threshold the pooled value must reach.
func (p *CollectiveOrder) MinimumValue() kernel.Money {
	return p.minimumValue
}

// CurrentValue returns the last recomputed sum of member order totals.
func (p *CollectiveOrder) CurrentValue() kernel.Money {
	return p.currentValue
}

// Status returns the current lifecycle state.
func (p *CollectiveOrder) Status() Status {
	return p.status
}

// PaymentDeadline returns the end of the payment-collection period, or nil
// before the window opens.
func (p *CollectiveOrder) PaymentDeadline() *time.Time {
	return p.paymentDeadline
}

// SupplierPaymentDate returns when the supplier was paid, or nil.
func (p *CollectiveOrder) SupplierPaymentDate() *time.Time {
	return p.supplierPaymentDate
}

// AnticipatedAmount returns the amount paid to the supplier.
func (p *CollectiveOrder) AnticipatedAmount() kernel.Money {
	return p.anticipatedAmount
}

// TotalReceived returns the amount collected from customers so far.
func (p *CollectiveOrder) TotalReceived() kernel.Money {
	return p.totalReceived
}

// ProfitMargin returns totalReceived minus anticipatedAmount, derived at
// close. It may be negative.
func (p *CollectiveOrder) ProfitMargin() decimal.Decimal {
	return p.profitMargin
}

// TrackingCode returns the carrier tracking code, or empty before shipment.
func (p *CollectiveOrder) TrackingCode() string {
	return p.trackingCode
}

// ClosedBy returns the admin who closed the pool, or nil.
func (p *CollectiveOrder) ClosedBy() *kernel.UUID {
	return p.closedBy
}

// CancellationReason returns the recorded reason, or empty.
func (p *CollectiveOrder) CancellationReason() string {
	return p.cancellationReason
}

// CreatedAt returns the pool creation time.
func (p *CollectiveOrder) CreatedAt() time.Time {
	return p.createdAt
}

// MinimumReachedAt returns the threshold-crossing time, or nil.
func (p *CollectiveOrder) MinimumReachedAt() *time.Time {
	return p.minimumReachedAt
}

// PaymentWindowOpenedAt returns when collection started, or nil.
func (p *CollectiveOrder) PaymentWindowOpenedAt() *time.Time {
	return p.paymentWindowOpenedAt
}

// ShippedAt returns the shipment time, or nil.
func (p *CollectiveOrder) ShippedAt() *time.Time {
	return p.shippedAt
}

// ReceivedAt returns the warehouse arrival time, or nil.
func (p *CollectiveOrder) ReceivedAt() *time.Time {
	return p.receivedAt
}

// DeliveredAt returns the customer delivery time, or nil.
func (p *CollectiveOrder) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// ClosedAt returns the close time, or nil.
func (p *CollectiveOrder) ClosedAt() *time.Time {
	return p.closedAt
}

// CancelledAt returns the cancellation time, or nil.
func (p *CollectiveOrder) CancelledAt() *time.Time {
	return p.cancelledAt
}

// Version returns the optimistic-lock version loaded from persistence.
func (p *CollectiveOrder) Version() int64 {
	return p.version
}

// Recalculate replaces currentValue with the freshly computed sum of member
// order totals. While the pool is Open and the sum reaches the minimum, the
// pool transitions to MinimumReached and stamps the crossing time; the
// crossing happens at most once and a later drop below the threshold never
// reverts it.
func (p *CollectiveOrder) Recalculate(memberTotal kernel.Money, now time.Time) error {
	p.currentValue = memberTotal

	if p.status != StatusOpen || memberTotal.LessThan(p.minimumValue) {
		return nil
	}

	next, err := p.status.Apply(ActionReachMinimum)
	if err != nil {
		return err
	}
	p.status = next
	p.minimumReachedAt = &now
	return nil
}

// OpenPaymentWindow starts the customer payment-collection period, bounded
// by deadline.
func (p *CollectiveOrder) OpenPaymentWindow(deadline time.Time, now time.Time) error {
	if !deadline.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("paymentDeadline is invalid",
			fmt.Errorf("%s is not after %s", deadline.Format(time.RFC3339), now.Format(time.RFC3339)))
	}

	next, err := p.status.Apply(ActionOpenPaymentWindow)
	if err != nil {
		return err
	}

	p.status = next
	p.paymentDeadline = &deadline
	p.paymentWindowOpenedAt = &now
	return nil
}

// PaySupplier records the anticipated amount paid to the supplier and moves
// the pool to SupplierPaid. The caller cascades the status to every member
// order in the same transaction.
func (p *CollectiveOrder) PaySupplier(amount kernel.Money, now time.Time) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("anticipatedAmount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	next, err := p.status.Apply(ActionPaySupplier)
	if err != nil {
		return err
	}

	p.status = next
	p.anticipatedAmount = amount
	p.supplierPaymentDate = &now
	return nil
}

// MarkShipped records the carrier tracking code and moves SupplierPaid to
// InTransit.
func (p *CollectiveOrder) MarkShipped(trackingCode string, now time.Time) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode is required")
	}

	next, err := p.status.Apply(ActionMarkShipped)
	if err != nil {
		return err
	}

	p.status = next
	p.trackingCode = trackingCode
	p.shippedAt = &now
	return nil
}

// MarkReceived moves InTransit to Received.
func (p *CollectiveOrder) MarkReceived(now time.Time) error {
	next, err := p.status.Apply(ActionMarkReceived)
	if err != nil {
		return err
	}

	p.status = next
	p.receivedAt = &now
	return nil
}

// MarkDelivered moves Received to Delivered.
func (p *CollectiveOrder) MarkDelivered(now time.Time) error {
	next, err := p.status.Apply(ActionMarkDelivered)
	if err != nil {
		return err
	}

	p.status = next
	p.deliveredAt = &now
	return nil
}

// RecordCustomerPayment accumulates a customer payment into totalReceived.
// Legal once the payment window has opened and until the pool is closed or
// cancelled.
func (p *CollectiveOrder) RecordCustomerPayment(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	switch p.status {
	case StatusPaymentWindow, StatusSupplierPaid, StatusInTransit, StatusReceived, StatusDelivered:
		p.totalReceived = p.totalReceived.Add(amount)
		return nil
	default:
		return errs.NewInvalidStateTransitionError("CollectiveOrder", p.status.String(), "recordCustomerPayment")
	}
}

// Close settles a Delivered pool: derives profitMargin as totalReceived
// minus anticipatedAmount, records the acting admin, and moves to Closed.
// Closing twice fails with an InvalidStateTransitionError and changes
// nothing.
func (p *CollectiveOrder) Close(adminID kernel.UUID, now time.Time) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	next, err := p.status.Apply(ActionClose)
	if err != nil {
		return err
	}

	p.status = next
	p.profitMargin = p.totalReceived.Amount().Sub(p.anticipatedAmount.Amount())
	p.closedBy = &adminID
	p.closedAt = &now
	return nil
}

// Cancel aborts a pool that has not yet paid its supplier. The caller
// reverts every member order to Confirmed in the same transaction.
func (p *CollectiveOrder) Cancel(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason is required")
	}

	next, err := p.status.Apply(ActionCancel)
	if err != nil {
		return err
	}

	p.status = next
	p.cancellationReason = reason
	p.cancelledAt = &now
	return nil
}

// CompletionPercentage returns the pooled value as a percentage of the
// minimum, clamped to [0, 100].
func (p *CollectiveOrder) CompletionPercentage() float64 {
	return p.currentValue.CompletionPercentage(p.minimumValue)
}

// RemainingAmount returns how much pooled value is still missing, or zero
// once the minimum is met.
func (p *CollectiveOrder) RemainingAmount() kernel.Money {
	remaining, err := p.minimumValue.Sub(p.currentValue)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return remaining
}

// IsPaymentOverdue reports whether the pool is still collecting customer
// payments past its deadline. Surfaced as data for the external deadline
// sweep; the core never auto-cancels.
func (p *CollectiveOrder) IsPaymentOverdue(now time.Time) bool {
	return p.status == StatusPaymentWindow &&
		p.paymentDeadline != nil && now.After(*p.paymentDeadline)
}

// IsPaymentDeadlineNear reports whether the deadline is within the warning
// window but not yet passed.
func (p *CollectiveOrder) IsPaymentDeadlineNear(now time.Time) bool {
	if p.status != StatusPaymentWindow || p.paymentDeadline == nil {
		return false
	}
	if now.After(*p.paymentDeadline) {
		return false
	}
	return p.paymentDeadline.Sub(now) <= paymentDeadlineWarning
}

func (p *CollectiveOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *CollectiveOrder) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.supplierID = id
	return nil
}

func (p *CollectiveOrder) setMinimumValue(value kernel.Money) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("minimumValue is invalid",
			fmt.Errorf("%s is not greater than 0", value.String()))
	}
	p.minimumValue = value
	return nil
}

func (p *CollectiveOrder) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid",
			fmt.Errorf("%d is not greater than 0", version))
	}
	p.version = version
	return nil
}
