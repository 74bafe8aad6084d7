package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// PartialPaymentModel represents the partial_payments table in the database.
type PartialPaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentDate   time.Time       `gorm:"type:date;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`

	Transaction *TransactionModel `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName returns the table name for the PartialPaymentModel.
func (PartialPaymentModel) TableName() string {
	return "partial_payments"
}

// ToEntity converts a PartialPaymentModel to a domain PartialPayment entity.
func (m *PartialPaymentModel) ToEntity() *entity.PartialPayment {
	return &entity.PartialPayment{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		PaymentDate:   m.PaymentDate,
		Amount:        m.Amount,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// PartialPaymentFromEntity creates a PartialPaymentModel from a domain entity.
func PartialPaymentFromEntity(payment *entity.PartialPayment) *PartialPaymentModel {
	return &PartialPaymentModel{
		ID:            payment.ID,
		TransactionID: payment.TransactionID,
		PaymentDate:   payment.PaymentDate,
		Amount:        payment.Amount,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}
}
