package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents one brokered loan agreement between a lending party,
// a borrowing party and an optional intermediary.
//
// The derived amount fields (DayCount through NetInterestAmount) are a
// snapshot computed from the terms at creation/edit time. They are stored and
// not recomputed live; the pending-balance calculation works on
// RemainingBalance instead.
type Transaction struct {
	ID uuid.UUID

	LenderPartyID       uuid.UUID
	BorrowerPartyID     uuid.UUID
	IntermediaryPartyID *uuid.UUID

	Principal decimal.Decimal
	Condition string
	StartDate time.Time
	EndDate   time.Time

	// InterestRate and BrokerageRate are stored as decimal fractions
	// (0.12 for 12%). The API boundary accepts percentages.
	InterestRate  decimal.Decimal
	BrokerageRate decimal.Decimal

	// DayCountBasis is the year-length divisor of the simple-interest
	// formula, 365 unless overridden.
	DayCountBasis int

	// Derived-at-creation snapshot.
	DayCount             int
	MonthCount           decimal.Decimal
	InterestAmount       decimal.Decimal
	BrokerageAmount      decimal.Decimal
	LenderReturnAmount   decimal.Decimal
	LendeeReceivedAmount decimal.Decimal
	NetInterestAmount    decimal.Decimal

	// Mutable settlement state. RemainingBalance starts at Principal and is
	// only moved by the payment ledger; Received flips automatically on a
	// zero balance and can also be forced manually.
	RemainingBalance decimal.Decimal
	Received         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionWithParties bundles a transaction with the resolved names of its
// parties for list projections.
type TransactionWithParties struct {
	Transaction           *Transaction
	LenderPartyName       string
	BorrowerPartyName     string
	IntermediaryPartyName string
}
