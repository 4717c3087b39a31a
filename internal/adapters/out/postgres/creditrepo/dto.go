// Package creditrepo provides data transfer objects and mapping functions for ledger entry persistence.
// This package implements the repository pattern for credit transactions, handling
// the conversion between domain entities and database representations.
package creditrepo

import (
	"time"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDTO represents the database structure for persisting ledger entries.
// Entries are append-mostly: amount and type never change after creation, so
// updates only touch the status and usage columns.
type TransactionDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TransactionType string          `gorm:"type:varchar(32);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Description     string          `gorm:"type:text;not null"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	BalanceAfter    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	ExpiresAt       *time.Time      `gorm:"index"`
	UsedAt          *time.Time

	CollectiveOrderID *uuid.UUID       `gorm:"type:uuid;index"`
	CustomOrderID     *uuid.UUID       `gorm:"type:uuid;index"`
	TransferFromID    *uuid.UUID       `gorm:"type:uuid"`
	TransferToID      *uuid.UUID       `gorm:"type:uuid"`
	BonusPercentage   *decimal.Decimal `gorm:"type:decimal(5,2)"`
}

// TableName specifies the database table name for ledger entries.
// Overrides GORM's default naming convention to use "credit_transactions" instead of "transaction_dtos".
func (TransactionDTO) TableName() string {
	return "credit_transactions"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(t *credit.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:                t.ID().Bytes(),
		CustomerID:        t.CustomerID().Bytes(),
		TransactionType:   t.Type().String(),
		Amount:            t.Amount().Amount(),
		Description:       t.Description(),
		Status:            t.Status().String(),
		BalanceAfter:      t.BalanceAfter().Amount(),
		CreatedAt:         t.CreatedAt(),
		ExpiresAt:         t.ExpiresAt(),
		UsedAt:            t.UsedAt(),
		CollectiveOrderID: optionalUUID(t.CollectiveOrderID()),
		CustomOrderID:     optionalUUID(t.CustomOrderID()),
		TransferFromID:    optionalUUID(t.TransferFromID()),
		TransferToID:      optionalUUID(t.TransferToID()),
		BonusPercentage:   t.BonusPercentage(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto TransactionDTO) (*credit.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	txType, err := credit.TypeFromString(dto.TransactionType)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := credit.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	balanceAfter, err := kernel.NewMoney(dto.BalanceAfter)
	if err != nil {
		return nil, err
	}

	collectiveOrderID, err := optionalDomainUUID(dto.CollectiveOrderID)
	if err != nil {
		return nil, err
	}

	customOrderID, err := optionalDomainUUID(dto.CustomOrderID)
	if err != nil {
		return nil, err
	}

	transferFromID, err := optionalDomainUUID(dto.TransferFromID)
	if err != nil {
		return nil, err
	}

	transferToID, err := optionalDomainUUID(dto.TransferToID)
	if err != nil {
		return nil, err
	}

	return credit.RestoreTransaction(
		id,
		customerID,
		txType,
		amount,
		dto.Description,
		status,
		balanceAfter,
		dto.CreatedAt,
		dto.ExpiresAt,
		dto.UsedAt,
		collectiveOrderID,
		customOrderID,
		transferFromID,
		transferToID,
		dto.BonusPercentage,
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
