// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction in use-case outputs, with party
// names resolved where available.
type TransactionOutput struct {
	ID uuid.UUID

	LenderPartyID         uuid.UUID
	LenderPartyName       string
	BorrowerPartyID       uuid.UUID
	BorrowerPartyName     string
	IntermediaryPartyID   *uuid.UUID
	IntermediaryPartyName string

	Principal decimal.Decimal
	Condition string
	StartDate time.Time
	EndDate   time.Time

	InterestRate  decimal.Decimal
	BrokerageRate decimal.Decimal
	DayCountBasis int

	DayCount             int
	MonthCount           decimal.Decimal
	InterestAmount       decimal.Decimal
	BrokerageAmount      decimal.Decimal
	LenderReturnAmount   decimal.Decimal
	LendeeReceivedAmount decimal.Decimal
	NetInterestAmount    decimal.Decimal

	RemainingBalance decimal.Decimal
	Received         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// toTransactionOutput builds a TransactionOutput from an entity, leaving the
// party-name fields empty.
func toTransactionOutput(txn *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:                   txn.ID,
		LenderPartyID:        txn.LenderPartyID,
		BorrowerPartyID:      txn.BorrowerPartyID,
		IntermediaryPartyID:  txn.IntermediaryPartyID,
		Principal:            txn.Principal,
		Condition:            txn.Condition,
		StartDate:            txn.StartDate,
		EndDate:              txn.EndDate,
		InterestRate:         txn.InterestRate,
		BrokerageRate:        txn.BrokerageRate,
		DayCountBasis:        txn.DayCountBasis,
		DayCount:             txn.DayCount,
		MonthCount:           txn.MonthCount,
		InterestAmount:       txn.InterestAmount,
		BrokerageAmount:      txn.BrokerageAmount,
		LenderReturnAmount:   txn.LenderReturnAmount,
		LendeeReceivedAmount: txn.LendeeReceivedAmount,
		NetInterestAmount:    txn.NetInterestAmount,
		RemainingBalance:     txn.RemainingBalance,
		Received:             txn.Received,
		CreatedAt:            txn.CreatedAt,
		UpdatedAt:            txn.UpdatedAt,
	}
}

// toTransactionOutputWithParties builds a TransactionOutput including
// resolved party names.
func toTransactionOutputWithParties(twp *entity.TransactionWithParties) *TransactionOutput {
	out := toTransactionOutput(twp.Transaction)
	out.LenderPartyName = twp.LenderPartyName
	out.BorrowerPartyName = twp.BorrowerPartyName
	out.IntermediaryPartyName = twp.IntermediaryPartyName
	return out
}
