package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. Rates
// are stored as decimal fractions; the derived amount columns hold the
// creation-time snapshot.
type TransactionModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LenderPartyID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	BorrowerPartyID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	IntermediaryPartyID *uuid.UUID `gorm:"type:uuid;index"`

	Principal decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Condition string          `gorm:"type:text"`
	StartDate time.Time       `gorm:"type:date;not null;index"`
	EndDate   time.Time       `gorm:"type:date;not null;index"`

	InterestRate  decimal.Decimal `gorm:"type:decimal(12,8);not null"`
	BrokerageRate decimal.Decimal `gorm:"type:decimal(12,8);not null"`
	DayCountBasis int             `gorm:"not null;default:365"`

	DayCount             int             `gorm:"not null"`
	MonthCount           decimal.Decimal `gorm:"type:decimal(12,6);not null"`
	InterestAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BrokerageAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	LenderReturnAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	LendeeReceivedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NetInterestAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	RemainingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Received         bool            `gorm:"not null;default:false;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	LenderParty       *PartyModel `gorm:"foreignKey:LenderPartyID;references:ID"`
	BorrowerParty     *PartyModel `gorm:"foreignKey:BorrowerPartyID;references:ID"`
	IntermediaryParty *PartyModel `gorm:"foreignKey:IntermediaryPartyID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                   m.ID,
		LenderPartyID:        m.LenderPartyID,
		BorrowerPartyID:      m.BorrowerPartyID,
		IntermediaryPartyID:  m.IntermediaryPartyID,
		Principal:            m.Principal,
		Condition:            m.Condition,
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		InterestRate:         m.InterestRate,
		BrokerageRate:        m.BrokerageRate,
		DayCountBasis:        m.DayCountBasis,
		DayCount:             m.DayCount,
		MonthCount:           m.MonthCount,
		InterestAmount:       m.InterestAmount,
		BrokerageAmount:      m.BrokerageAmount,
		LenderReturnAmount:   m.LenderReturnAmount,
		LendeeReceivedAmount: m.LendeeReceivedAmount,
		NetInterestAmount:    m.NetInterestAmount,
		RemainingBalance:     m.RemainingBalance,
		Received:             m.Received,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// ToEntityWithParties converts a TransactionModel with preloaded parties to a
// TransactionWithParties entity.
func (m *TransactionModel) ToEntityWithParties() *entity.TransactionWithParties {
	result := &entity.TransactionWithParties{
		Transaction: m.ToEntity(),
	}
	if m.LenderParty != nil {
		result.LenderPartyName = m.LenderParty.Name
	}
	if m.BorrowerParty != nil {
		result.BorrowerPartyName = m.BorrowerParty.Name
	}
	if m.IntermediaryParty != nil {
		result.IntermediaryPartyName = m.IntermediaryParty.Name
	}
	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                   transaction.ID,
		LenderPartyID:        transaction.LenderPartyID,
		BorrowerPartyID:      transaction.BorrowerPartyID,
		IntermediaryPartyID:  transaction.IntermediaryPartyID,
		Principal:            transaction.Principal,
		Condition:            transaction.Condition,
		StartDate:            transaction.StartDate,
		EndDate:              transaction.EndDate,
		InterestRate:         transaction.InterestRate,
		BrokerageRate:        transaction.BrokerageRate,
		DayCountBasis:        transaction.DayCountBasis,
		DayCount:             transaction.DayCount,
		MonthCount:           transaction.MonthCount,
		InterestAmount:       transaction.InterestAmount,
		BrokerageAmount:      transaction.BrokerageAmount,
		LenderReturnAmount:   transaction.LenderReturnAmount,
		LendeeReceivedAmount: transaction.LendeeReceivedAmount,
		NetInterestAmount:    transaction.NetInterestAmount,
		RemainingBalance:     transaction.RemainingBalance,
		Received:             transaction.Received,
		CreatedAt:            transaction.CreatedAt,
		UpdatedAt:            transaction.UpdatedAt,
	}
}
