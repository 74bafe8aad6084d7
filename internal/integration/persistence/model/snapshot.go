package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// BalanceSnapshotModel represents the balance_snapshots audit table.
type BalanceSnapshotModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CalculationDate   time.Time       `gorm:"type:date;not null"`
	RemainingBalance  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestAmount    decimal.Decimal `gorm:"type:decimal(20,10);not null"`
	BrokerageAmount   decimal.Decimal `gorm:"type:decimal(20,10);not null"`
	DaysSinceMovement int             `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BalanceSnapshotModel.
func (BalanceSnapshotModel) TableName() string {
	return "balance_snapshots"
}

// ToEntity converts a BalanceSnapshotModel to a domain BalanceSnapshot entity.
func (m *BalanceSnapshotModel) ToEntity() *entity.BalanceSnapshot {
	return &entity.BalanceSnapshot{
		ID:                m.ID,
		TransactionID:     m.TransactionID,
		CalculationDate:   m.CalculationDate,
		RemainingBalance:  m.RemainingBalance,
		InterestAmount:    m.InterestAmount,
		BrokerageAmount:   m.BrokerageAmount,
		DaysSinceMovement: m.DaysSinceMovement,
		CreatedAt:         m.CreatedAt,
	}
}

// BalanceSnapshotFromEntity creates a BalanceSnapshotModel from a domain entity.
func BalanceSnapshotFromEntity(snapshot *entity.BalanceSnapshot) *BalanceSnapshotModel {
	return &BalanceSnapshotModel{
		ID:                snapshot.ID,
		TransactionID:     snapshot.TransactionID,
		CalculationDate:   snapshot.CalculationDate,
		RemainingBalance:  snapshot.RemainingBalance,
		InterestAmount:    snapshot.InterestAmount,
		BrokerageAmount:   snapshot.BrokerageAmount,
		DaysSinceMovement: snapshot.DaysSinceMovement,
		CreatedAt:         snapshot.CreatedAt,
	}
}
