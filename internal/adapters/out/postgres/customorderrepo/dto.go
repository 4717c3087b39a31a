// Package customorderrepo provides data transfer objects and mapping functions for custom order persistence.
// This package implements the repository pattern for the custom order aggregate, handling
// the conversion between domain entities and database representations.
package customorderrepo

import (
	"strings"
	"time"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomOrderDTO represents the database structure for persisting custom order aggregates.
// The pool membership is a nullable foreign key on this side; the collective
// order table holds no member list. The version column backs the optimistic lock.
type CustomOrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	SupplierID        *uuid.UUID `gorm:"type:uuid;index"`
	CollectiveOrderID *uuid.UUID `gorm:"type:uuid;index"`

	Description    string           `gorm:"type:text;not null"`
	Details        ItemDetailsDTO   `gorm:"embedded;embeddedPrefix:item_"`
	Quantity       int              `gorm:"type:int;not null"`
	Urgency        int              `gorm:"type:int;not null"`
	EstimatedPrice *decimal.Decimal `gorm:"type:decimal(14,2)"`
	FinalPrice     *decimal.Decimal `gorm:"type:decimal(14,2)"`
	Status         string           `gorm:"type:varchar(32);not null;index"`

	AnalyzedBy         *uuid.UUID `gorm:"type:uuid"`
	CancellationReason string     `gorm:"type:text"`
	CreatedAt          time.Time  `gorm:"not null"`
	AnalyzedAt         *time.Time
	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	DeliveredAt        *time.Time

	Version int64 `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for custom order entities.
// Overrides GORM's default naming convention to use "custom_orders" instead of "custom_order_dtos".
func (CustomOrderDTO) TableName() string {
	return "custom_orders"
}

// ItemDetailsDTO represents the embedded free-form item attributes within the
// custom order table. Alternative colors are stored comma-separated.
type ItemDetailsDTO struct {
	PreferredColor    string `gorm:"type:varchar(100)"`
	AlternativeColors string `gorm:"type:text"`
	Size              string `gorm:"type:varchar(50)"`
	Category          string `gorm:"type:varchar(100)"`
	Observations      string `gorm:"type:text"`
}

// fromDomain converts a custom order domain aggregate to its database representation.
func fromDomain(o *customorder.CustomOrder) CustomOrderDTO {
	details := o.Details()

	return CustomOrderDTO{
		ID:                o.ID().Bytes(),
		CustomerID:        o.CustomerID().Bytes(),
		SupplierID:        optionalUUID(o.SupplierID()),
		CollectiveOrderID: optionalUUID(o.CollectiveOrderID()),
		Description:       o.Description(),
		Details: ItemDetailsDTO{
			PreferredColor:    details.PreferredColor,
			AlternativeColors: strings.Join(details.AlternativeColors, ","),
			Size:              details.Size,
			Category:          details.Category,
			Observations:      details.Observations,
		},
		Quantity:           o.Quantity(),
		Urgency:            int(o.Urgency()),
		EstimatedPrice:     optionalAmount(o.EstimatedPrice()),
		FinalPrice:         optionalAmount(o.FinalPrice()),
		Status:             o.Status().String(),
		AnalyzedBy:         optionalUUID(o.AnalyzedBy()),
		CancellationReason: o.CancellationReason(),
		CreatedAt:          o.CreatedAt(),
		AnalyzedAt:         o.AnalyzedAt(),
		ConfirmedAt:        o.ConfirmedAt(),
		CancelledAt:        o.CancelledAt(),
		DeliveredAt:        o.DeliveredAt(),
		Version:            o.Version(),
	}
}

// toDomain converts a database DTO to a custom order domain aggregate.
func toDomain(dto CustomOrderDTO) (*customorder.CustomOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := optionalDomainUUID(dto.SupplierID)
	if err != nil {
		return nil, err
	}

	collectiveOrderID, err := optionalDomainUUID(dto.CollectiveOrderID)
	if err != nil {
		return nil, err
	}

	analyzedBy, err := optionalDomainUUID(dto.AnalyzedBy)
	if err != nil {
		return nil, err
	}

	estimatedPrice, err := optionalDomainMoney(dto.EstimatedPrice)
	if err != nil {
		return nil, err
	}

	finalPrice, err := optionalDomainMoney(dto.FinalPrice)
	if err != nil {
		return nil, err
	}

	status, err := customorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var alternativeColors []string
	if dto.Details.AlternativeColors != "" {
		alternativeColors = strings.Split(dto.Details.AlternativeColors, ",")
	}

	return customorder.RestoreCustomOrder(
		id,
		customerID,
		supplierID,
		collectiveOrderID,
		dto.Description,
		customorder.ItemDetails{
			PreferredColor:    dto.Details.PreferredColor,
			AlternativeColors: alternativeColors,
			Size:              dto.Details.Size,
			Category:          dto.Details.Category,
			Observations:      dto.Details.Observations,
		},
		dto.Quantity,
		customorder.Urgency(dto.Urgency),
		estimatedPrice,
		finalPrice,
		status,
		analyzedBy,
		dto.CancellationReason,
		dto.CreatedAt,
		dto.AnalyzedAt,
		dto.ConfirmedAt,
		dto.CancelledAt,
		dto.DeliveredAt,
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

func optionalAmount(m *kernel.Money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	amount := m.Amount()
	return &amount
}

func optionalDomainMoney(raw *decimal.Decimal) (*kernel.Money, error) {
	if raw == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(*raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
