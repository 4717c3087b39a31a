package supplier

import (
	"errors"
	"fmt"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrSupplierIsNotConstructed is returned when a Supplier instance was not
// created through NewSupplier or RestoreSupplier.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

const (
	// MinDeliveryTimeDays and MaxDeliveryTimeDays bound the promised delivery window.
	MinDeliveryTimeDays = 1
	MaxDeliveryTimeDays = 365

	// MinPerformanceRating and MaxPerformanceRating bound the admin-assigned rating.
	MinPerformanceRating = 1
	MaxPerformanceRating = 5
)

// Supplier represents a wholesale supplier that collective orders are pooled
// against. It carries the attributes the ordering workflow consumes: the
// minimum pooled value the supplier requires before accepting an order, the
// administrative fee charged on top of goods, and the promised delivery
// window.
//
// Supplier follows these invariants:
//   - Minimum order value must be positive
//   - Admin fee percentage is within [0, 100]
//   - Delivery time is within [1, 365] days
//   - Performance rating is within [1, 5]
type Supplier struct {
	id                kernel.UUID
	name              string
	minimumOrderValue kernel.Money
	adminFeePercent   decimal.Decimal
	deliveryTimeDays  int
	performanceRating int

	guard guard.ConstructorGuard
}

// NewSupplier creates a Supplier with a default performance rating of 5.
// Returns a validation error if any attribute violates the invariants above.
func NewSupplier(
	id kernel.UUID,
	name string,
	minimumOrderValue kernel.Money,
	adminFeePercent decimal.Decimal,
	deliveryTimeDays int,
) (*Supplier, error) {
	return RestoreSupplier(id, name, minimumOrderValue, adminFeePercent, deliveryTimeDays, MaxPerformanceRating)
}

// RestoreSupplier reconstructs a Supplier from persistence, re-validating all
// invariants.
func RestoreSupplier(
	id kernel.UUID,
	name string,
	minimumOrderValue kernel.Money,
	adminFeePercent decimal.Decimal,
	deliveryTimeDays int,
	performanceRating int,
) (*Supplier, error) {
	s := &Supplier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setMinimumOrderValue(minimumOrderValue),
		s.setAdminFeePercent(adminFeePercent),
		s.setDeliveryTimeDays(deliveryTimeDays),
		s.setPerformanceRating(performanceRating),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Supplier was created through a constructor.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

// IsEqual compares two suppliers by their unique identifiers.
func (s *Supplier) IsEqual(other *Supplier) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier's display name.
func (s *Supplier) Name() string {
	return s.name
}

// MinimumOrderValue returns the minimum pooled value the supplier requires.
func (s *Supplier) MinimumOrderValue() kernel.Money {
	return s.minimumOrderValue
}

// AdminFeePercent returns the administrative fee percentage in [0, 100].
func (s *Supplier) AdminFeePercent() decimal.Decimal {
	return s.adminFeePercent
}

// DeliveryTimeDays returns the promised delivery window in days.
func (s *Supplier) DeliveryTimeDays() int {
	return s.deliveryTimeDays
}

// PerformanceRating returns the admin-assigned rating in [1, 5].
func (s *Supplier) PerformanceRating() int {
	return s.performanceRating
}

// Rate updates the supplier's performance rating.
func (s *Supplier) Rate(rating int) error {
	return s.setPerformanceRating(rating)
}

func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Supplier) setMinimumOrderValue(value kernel.Money) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"minimumOrderValue is invalid",
			fmt.Errorf("%s is not greater than 0", value.String()),
		)
	}
	s.minimumOrderValue = value
	return nil
}

func (s *Supplier) setAdminFeePercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("adminFeePercent", percent.String(), 0, 100)
	}
	s.adminFeePercent = percent
	return nil
}

func (s *Supplier) setDeliveryTimeDays(days int) error {
	if days < MinDeliveryTimeDays || days > MaxDeliveryTimeDays {
		return errs.NewValueIsOutOfRangeError("deliveryTimeDays", days, MinDeliveryTimeDays, MaxDeliveryTimeDays)
	}
	s.deliveryTimeDays = days
	return nil
}

func (s *Supplier) setPerformanceRating(rating int) error {
	if rating < MinPerformanceRating || rating > MaxPerformanceRating {
		return errs.NewValueIsOutOfRangeError("performanceRating", rating, MinPerformanceRating, MaxPerformanceRating)
	}
	s.performanceRating = rating
	return nil
}
