package collectiveorderrepo

import (
	"context"
	"errors"

	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCollectiveOrderRepository implements CollectiveOrderRepository using GORM.
type GormCollectiveOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCollectiveOrderRepository creates a new GORM collective order repository.
func NewGormCollectiveOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCollectiveOrderRepository {
	return &GormCollectiveOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new collective order to the database.
func (r *GormCollectiveOrderRepository) Add(ctx context.Context, aggregate *collectiveorder.CollectiveOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing collective order using the version read at load
// time. The write bumps the version; if another writer moved it first the
// update matches zero rows and fails with a ConcurrentModificationError. Two
// concurrent attaches therefore cannot both recompute from the same stale
// currentValue.
func (r *GormCollectiveOrderRepository) Update(ctx context.Context, aggregate *collectiveorder.CollectiveOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&CollectiveOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"current_value":            dto.CurrentValue,
			"status":                   dto.Status,
			"payment_deadline":         dto.PaymentDeadline,
			"supplier_payment_date":    dto.SupplierPaymentDate,
			"anticipated_amount":       dto.AnticipatedAmount,
			"total_received":           dto.TotalReceived,
			"profit_margin":            dto.ProfitMargin,
			"tracking_code":            dto.TrackingCode,
			"closed_by":                dto.ClosedBy,
			"cancellation_reason":      dto.CancellationReason,
			"minimum_reached_at":       dto.MinimumReachedAt,
			"payment_window_opened_at": dto.PaymentWindowOpenedAt,
			"shipped_at":               dto.ShippedAt,
			"received_at":              dto.ReceivedAt,
			"delivered_at":             dto.DeliveredAt,
			"closed_at":                dto.ClosedAt,
			"cancelled_at":             dto.CancelledAt,
			"version":                  aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("CollectiveOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a collective order by ID.
func (r *GormCollectiveOrderRepository) Get(ctx context.Context, id kernel.UUID) (*collectiveorder.CollectiveOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CollectiveOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collectiveOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenBySupplier retrieves the supplier's pool currently accepting members.
// A supplier has at most one Open pool at a time.
func (r *GormCollectiveOrderRepository) GetOpenBySupplier(ctx context.Context, supplierID kernel.UUID) (*collectiveorder.CollectiveOrder, error) {
	if err := supplierID.Validate(); err != nil {
		return nil, err
	}

	var dto CollectiveOrderDTO
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND status = ?", supplierID.Bytes(), collectiveorder.StatusOpen.String()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("openCollectiveOrder", supplierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInPaymentWindow retrieves every pool currently collecting customer
// payments, earliest deadline first.
func (r *GormCollectiveOrderRepository) GetAllInPaymentWindow(ctx context.Context) ([]*collectiveorder.CollectiveOrder, error) {
	var dtos []CollectiveOrderDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", collectiveorder.StatusPaymentWindow.String()).
		Order("payment_deadline ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	pools := make([]*collectiveorder.CollectiveOrder, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pools = append(pools, p)
	}

	return pools, nil
}
