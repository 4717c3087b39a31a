package creditrepo

import (
	"context"
	"errors"
	"time"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCreditRepository implements CreditRepository using GORM.
type GormCreditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCreditRepository creates a new GORM ledger entry repository.
func NewGormCreditRepository(db *gorm.DB, tracker aggregateTracker) *GormCreditRepository {
	return &GormCreditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ledger entry to the database.
func (r *GormCreditRepository) Add(ctx context.Context, aggregate *credit.Transaction) error {
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

// Update persists a status transition on an existing entry. Only the status
// and usage columns are written; the entry itself is immutable.
func (r *GormCreditRepository) Update(ctx context.Context, aggregate *credit.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":  aggregate.Status().String(),
			"used_at": aggregate.UsedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("creditTransaction", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ledger entry by ID.
func (r *GormCreditRepository) Get(ctx context.Context, id kernel.UUID) (*credit.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("creditTransaction", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCustomer retrieves the customer's full ledger, newest first.
func (r *GormCreditRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*credit.Transaction, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActiveByCustomer retrieves the customer's Active entries, oldest
// first so the ledger replays in creation order.
func (r *GormCreditRepository) GetAllActiveByCustomer(ctx context.Context, customerID kernel.UUID) ([]*credit.Transaction, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID.Bytes(), credit.StatusActive.String()).
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOverdue retrieves Active entries whose expiry has passed, oldest
// expiry first. Feeds the expiration sweep.
func (r *GormCreditRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*credit.Transaction, error) {
	var dtos []TransactionDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", credit.StatusActive.String(), now).
		Order("expires_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []TransactionDTO) ([]*credit.Transaction, error) {
	entries := make([]*credit.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}
	return entries, nil
}
