// Package supplierrepo provides data transfer objects and mapping functions for supplier persistence.
// This package implements the repository pattern for the supplier aggregate, handling
// the conversion between domain entities and database representations.
package supplierrepo

import (
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/core/domain/model/supplier"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierDTO represents the database structure for persisting supplier aggregates.
type SupplierDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"type:varchar(255);not null"`
	MinimumOrderValue decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	AdminFeePercent   decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	DeliveryTimeDays  int             `gorm:"type:int;not null"`
	PerformanceRating int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for supplier entities.
// Overrides GORM's default naming convention to use "suppliers" instead of "supplier_dtos".
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// fromDomain converts a supplier domain aggregate to its database representation.
func fromDomain(s *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:                s.ID().Bytes(),
		Name:              s.Name(),
		MinimumOrderValue: s.MinimumOrderValue().Amount(),
		AdminFeePercent:   s.AdminFeePercent(),
		DeliveryTimeDays:  s.DeliveryTimeDays(),
		PerformanceRating: s.PerformanceRating(),
	}
}

// toDomain converts a database DTO to a supplier domain aggregate.
func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	minimumOrderValue, err := kernel.NewMoney(dto.MinimumOrderValue)
	if err != nil {
		return nil, err
	}

	return supplier.RestoreSupplier(
		id,
		dto.Name,
		minimumOrderValue,
		dto.AdminFeePercent,
		dto.DeliveryTimeDays,
		dto.PerformanceRating,
	)
}
