// Package collectiveorderrepo provides data transfer objects and mapping functions for collective order persistence.
// This package implements the repository pattern for the collective order aggregate, handling
// the conversion between domain entities and database representations.
package collectiveorderrepo

import (
	"time"

	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CollectiveOrderDTO represents the database structure for persisting collective order aggregates.
// Member orders reference the pool by foreign key from the custom order table;
// this table holds no member list. The version column backs the optimistic lock.
type CollectiveOrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;index"`

	MinimumValue decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status       string          `gorm:"type:varchar(32);not null;index"`

	PaymentDeadline     *time.Time
	SupplierPaymentDate *time.Time
	AnticipatedAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalReceived       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ProfitMargin        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TrackingCode        string          `gorm:"type:varchar(100)"`
	ClosedBy            *uuid.UUID      `gorm:"type:uuid"`

	CancellationReason    string    `gorm:"type:text"`
	CreatedAt             time.Time `gorm:"not null"`
	MinimumReachedAt      *time.Time
	PaymentWindowOpenedAt *time.Time
	ShippedAt             *time.Time
	ReceivedAt            *time.Time
	DeliveredAt           *time.Time
	ClosedAt              *time.Time
	CancelledAt           *time.Time

	Version int64 `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for collective order entities.
// Overrides GORM's default naming convention to use "collective_orders" instead of "collective_order_dtos".
func (CollectiveOrderDTO) TableName() string {
	return "collective_orders"
}

// fromDomain converts a collective order domain aggregate to its database representation.
func fromDomain(p *collectiveorder.CollectiveOrder) CollectiveOrderDTO {
	return CollectiveOrderDTO{
		ID:                    p.ID().Bytes(),
		SupplierID:            p.SupplierID().Bytes(),
		MinimumValue:          p.MinimumValue().Amount(),
		CurrentValue:          p.CurrentValue().Amount(),
		Status:                p.Status().String(),
		PaymentDeadline:       p.PaymentDeadline(),
		SupplierPaymentDate:   p.SupplierPaymentDate(),
		AnticipatedAmount:     p.AnticipatedAmount().Amount(),
		TotalReceived:         p.TotalReceived().Amount(),
		ProfitMargin:          p.ProfitMargin(),
		TrackingCode:          p.TrackingCode(),
		ClosedBy:              optionalUUID(p.ClosedBy()),
		CancellationReason:    p.CancellationReason(),
		CreatedAt:             p.CreatedAt(),
		MinimumReachedAt:      p.MinimumReachedAt(),
		PaymentWindowOpenedAt: p.PaymentWindowOpenedAt(),
		ShippedAt:             p.ShippedAt(),
		ReceivedAt:            p.ReceivedAt(),
		DeliveredAt:           p.DeliveredAt(),
		ClosedAt:              p.ClosedAt(),
		CancelledAt:           p.CancelledAt(),
		Version:               p.Version(),
	}
}

// toDomain converts a database DTO to a collective order domain aggregate.
func toDomain(dto CollectiveOrderDTO) (*collectiveorder.CollectiveOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	minimumValue, err := kernel.NewMoney(dto.MinimumValue)
	if err != nil {
		return nil, err
	}

	currentValue, err := kernel.NewMoney(dto.CurrentValue)
	if err != nil {
		return nil, err
	}

	anticipatedAmount, err := kernel.NewMoney(dto.AnticipatedAmount)
	if err != nil {
		return nil, err
	}

	totalReceived, err := kernel.NewMoney(dto.TotalReceived)
	if err != nil {
		return nil, err
	}

	status, err := collectiveorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	closedBy, err := optionalDomainUUID(dto.ClosedBy)
	if err != nil {
		return nil, err
	}

	return collectiveorder.RestoreCollectiveOrder(
		id,
		supplierID,
		minimumValue,
		currentValue,
		status,
		dto.PaymentDeadline,
		dto.SupplierPaymentDate,
		anticipatedAmount,
		totalReceived,
		dto.ProfitMargin,
		dto.TrackingCode,
		closedBy,
		dto.CancellationReason,
		dto.CreatedAt,
		dto.MinimumReachedAt,
		dto.PaymentWindowOpenedAt,
		dto.ShippedAt,
		dto.ReceivedAt,
		dto.DeliveredAt,
		dto.ClosedAt,
		dto.CancelledAt,
		dto.Version,
	)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
