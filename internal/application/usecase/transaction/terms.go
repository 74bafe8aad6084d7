package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// Terms carries the user-entered agreement terms shared by the create and
// update use cases. Rates are percentages (12.5 means 12.5%); the stored form
// is the decimal fraction.
type Terms struct {
	LenderPartyID       uuid.UUID
	BorrowerPartyID     uuid.UUID
	IntermediaryPartyID *uuid.UUID

	Principal        decimal.Decimal
	Condition        string
	StartDate        time.Time
	EndDate          time.Time
	InterestRatePct  decimal.Decimal
	BrokerageRatePct decimal.Decimal
	// DayCountBasis of 0 means the 365-day default.
	DayCountBasis int
}

// validateTerms rejects invalid terms before any computation or state
// mutation happens.
func validateTerms(t Terms) error {
	if t.LenderPartyID == uuid.Nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeLenderPartyRequired,
			"lending party is required",
			domainerror.ErrLenderPartyRequired,
		)
	}
	if t.BorrowerPartyID == uuid.Nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeBorrowerPartyRequired,
			"borrowing party is required",
			domainerror.ErrBorrowerPartyRequired,
		)
	}
	if t.Principal.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPrincipal,
			"principal must be a non-negative amount",
			domainerror.ErrInvalidPrincipal,
		)
	}
	if t.InterestRatePct.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidInterestRate,
			"interest rate must be a non-negative percentage",
			domainerror.ErrInvalidInterestRate,
		)
	}
	if t.BrokerageRatePct.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidBrokerageRate,
			"brokerage rate must be a non-negative percentage",
			domainerror.ErrInvalidBrokerageRate,
		)
	}
	if t.EndDate.Before(t.StartDate) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEndDateBeforeStartDate,
			"end date must not be before start date",
			domainerror.ErrEndDateBeforeStartDate,
		)
	}
	if t.DayCountBasis < 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDayCountBasis,
			"day count basis must be a positive number of days",
			domainerror.ErrInvalidDayCountBasis,
		)
	}
	return nil
}
