package customorderrepo

import (
	"context"
	"errors"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomOrderRepository implements CustomOrderRepository using GORM.
type GormCustomOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomOrderRepository creates a new GORM custom order repository.
func NewGormCustomOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomOrderRepository {
	return &GormCustomOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new custom order to the database.
func (r *GormCustomOrderRepository) Add(ctx context.Context, aggregate *customorder.CustomOrder) error {
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

// Update saves an existing custom order using the version read at load time.
// The write bumps the version; if another writer moved it first the update
// matches zero rows and fails with a ConcurrentModificationError.
func (r *GormCustomOrderRepository) Update(ctx context.Context, aggregate *customorder.CustomOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&CustomOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"supplier_id":         dto.SupplierID,
			"collective_order_id": dto.CollectiveOrderID,
			"final_price":         dto.FinalPrice,
			"status":              dto.Status,
			"analyzed_by":         dto.AnalyzedBy,
			"cancellation_reason": dto.CancellationReason,
			"analyzed_at":         dto.AnalyzedAt,
			"confirmed_at":        dto.ConfirmedAt,
			"cancelled_at":        dto.CancelledAt,
			"delivered_at":        dto.DeliveredAt,
			"version":             aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("CustomOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a custom order by ID.
func (r *GormCustomOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByPool retrieves every order currently attached to the pool.
func (r *GormCustomOrderRepository) GetAllByPool(ctx context.Context, poolID kernel.UUID) ([]*customorder.CustomOrder, error) {
	if err := poolID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CustomOrderDTO
	if err := r.db.WithContext(ctx).
		Where("collective_order_id = ?", poolID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllConfirmedBySupplier retrieves confirmed, unpooled orders assigned to
// the supplier, oldest confirmation first.
func (r *GormCustomOrderRepository) GetAllConfirmedBySupplier(ctx context.Context, supplierID kernel.UUID) ([]*customorder.CustomOrder, error) {
	if err := supplierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CustomOrderDTO
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND status = ? AND collective_order_id IS NULL",
			supplierID.Bytes(), customorder.StatusConfirmed.String()).
		Order("confirmed_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateStatusForPool rewrites the status of every order attached to the pool
// in one statement, bumping each member's version.
func (r *GormCustomOrderRepository) UpdateStatusForPool(ctx context.Context, poolID kernel.UUID, status customorder.Status) error {
	if err := errors.Join(poolID.Validate(), status.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&CustomOrderDTO{}).
		Where("collective_order_id = ?", poolID.Bytes()).
		Updates(map[string]any{
			"status":  status.String(),
			"version": gorm.Expr("version + 1"),
		}).Error
}

// DetachAllFromPool clears the pool reference of every member order and
// reverts them to Confirmed. Used when a pool is cancelled.
func (r *GormCustomOrderRepository) DetachAllFromPool(ctx context.Context, poolID kernel.UUID) error {
	if err := poolID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&CustomOrderDTO{}).
		Where("collective_order_id = ?", poolID.Bytes()).
		Updates(map[string]any{
			"collective_order_id": nil,
			"status":              customorder.StatusConfirmed.String(),
			"version":             gorm.Expr("version + 1"),
		}).Error
}

func toDomainSlice(dtos []CustomOrderDTO) ([]*customorder.CustomOrder, error) {
	orders := make([]*customorder.CustomOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
