// Package calc implements the simple-interest and brokerage calculation
// engine. All functions are pure; monetary values use decimals and every
// intermediate value stays unrounded until the ComputeAll boundary.
package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDayCountBasis is the year-length divisor used when no override is given.
const DefaultDayCountBasis = 365

var (
	twelve  = decimal.NewFromInt(12)
	thirty  = decimal.NewFromInt(30)
	hundred = decimal.NewFromInt(100)
)

// Result holds every figure derived from a transaction's terms. Monetary
// fields are rounded to 2 decimal places; Months is a display convenience and
// is left unrounded.
type Result struct {
	Days           int
	Months         decimal.Decimal
	Interest       decimal.Decimal
	Brokerage      decimal.Decimal
	LenderReturn   decimal.Decimal
	LendeeReceived decimal.Decimal
	NetInterest    decimal.Decimal
}

// DaysBetween returns the day count between two dates with both boundary days
// included, never less than 1. Callers must ensure end is not before start;
// for an earlier end date the floor still applies and the result is 1.
func DaysBetween(start, end time.Time) int {
	days := int(dateOnly(end).Sub(dateOnly(start)).Hours() / 24)
	if days+1 < 1 {
		return 1
	}
	return days + 1
}

// MonthsFromDays converts a day count to months at 30 days per month.
// Display convenience only; never used in monetary arithmetic.
func MonthsFromDays(days int) decimal.Decimal {
	return decimal.NewFromInt(int64(days)).Div(thirty)
}

// InterestAmount computes principal * rate * 12 / basis * days. The rate is a
// decimal fraction. The 12-month normalization is deliberate: stored data
// from the original ledger was produced by this exact formula, so it must not
// be replaced by principal * rate * days/basis.
func InterestAmount(principal, rate decimal.Decimal, days, basis int) decimal.Decimal {
	return principal.
		Mul(rate).
		Mul(twelve).
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(int64(basis)))
}

// BrokerageAmount computes the brokerage (dalali) amount. Same formula shape
// as InterestAmount with an independent rate.
func BrokerageAmount(principal, rate decimal.Decimal, days, basis int) decimal.Decimal {
	return principal.
		Mul(rate).
		Mul(twelve).
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(int64(basis)))
}

// LenderReturnAmount is the total the lending party is owed back.
func LenderReturnAmount(principal, interest decimal.Decimal) decimal.Decimal {
	return principal.Add(interest)
}

// LendeeReceivedAmount is the amount netted after the brokerage deduction.
func LendeeReceivedAmount(principal, interest, brokerage decimal.Decimal) decimal.Decimal {
	return principal.Add(interest).Sub(brokerage)
}

// NetInterestAfterBrokerage is the interest remaining once brokerage is deducted.
func NetInterestAfterBrokerage(interest, brokerage decimal.Decimal) decimal.Decimal {
	return interest.Sub(brokerage)
}

// RemainingLenderReturn is the remaining principal plus the interest pending
// on it. Used for the post-partial-payment view, not for the full-term snapshot.
func RemainingLenderReturn(remainingPrincipal, pendingInterest decimal.Decimal) decimal.Decimal {
	return remainingPrincipal.Add(pendingInterest)
}

// ComputeAll derives every figure from the given terms. Rates are accepted as
// percentages (12.5 means 12.5%) and converted to decimal fractions here; a
// basis of 0 falls back to DefaultDayCountBasis. This is the single entry
// point for creation-time and preview-time computation.
func ComputeAll(principal, interestRatePct, brokerageRatePct decimal.Decimal, start, end time.Time, basis int) Result {
	if basis <= 0 {
		basis = DefaultDayCountBasis
	}

	interestRate := interestRatePct.Div(hundred)
	brokerageRate := brokerageRatePct.Div(hundred)

	days := DaysBetween(start, end)
	months := MonthsFromDays(days)

	interest := InterestAmount(principal, interestRate, days, basis)
	brokerage := BrokerageAmount(principal, brokerageRate, days, basis)
	lenderReturn := LenderReturnAmount(principal, interest)
	lendeeReceived := LendeeReceivedAmount(principal, interest, brokerage)
	netInterest := NetInterestAfterBrokerage(interest, brokerage)

	return Result{
		Days:           days,
		Months:         months,
		Interest:       interest.Round(2),
		Brokerage:      brokerage.Round(2),
		LenderReturn:   lenderReturn.Round(2),
		LendeeReceived: lendeeReceived.Round(2),
		NetInterest:    netInterest.Round(2),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
