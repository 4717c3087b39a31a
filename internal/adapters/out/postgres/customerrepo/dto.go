// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"groupbuy/internal/core/domain/model/customer"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// The version column backs the optimistic lock guarding the cached balance.
type CustomerDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	CreditBalance decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Version       int64           `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers" instead of "customer_dtos".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            c.ID().Bytes(),
		Name:          c.Name(),
		CreditBalance: c.Balance().Amount(),
		Version:       c.Version(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.CreditBalance)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, balance, dto.Version)
}
