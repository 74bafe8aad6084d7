package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/domain/calc"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// PreviewCalculationInput represents the input for a stateless calculation
// preview. Rates are percentages.
type PreviewCalculationInput struct {
	Principal        decimal.Decimal
	InterestRatePct  decimal.Decimal
	BrokerageRatePct decimal.Decimal
	StartDate        time.Time
	EndDate          time.Time
	DayCountBasis    int
}

// PreviewCalculationOutput represents the derived figures of a preview.
type PreviewCalculationOutput struct {
	Days           int
	Months         decimal.Decimal
	Interest       decimal.Decimal
	Brokerage      decimal.Decimal
	LenderReturn   decimal.Decimal
	LendeeReceived decimal.Decimal
	NetInterest    decimal.Decimal
}

// PreviewCalculationUseCase computes the full derived set for candidate terms
// without persisting anything. The UI uses it to show figures while the user
// is still filling in the form.
type PreviewCalculationUseCase struct{}

// NewPreviewCalculationUseCase creates a new PreviewCalculationUseCase instance.
func NewPreviewCalculationUseCase() *PreviewCalculationUseCase {
	return &PreviewCalculationUseCase{}
}

// Execute validates the candidate terms and computes the derived figures.
func (uc *PreviewCalculationUseCase) Execute(_ context.Context, input PreviewCalculationInput) (*PreviewCalculationOutput, error) {
	if input.Principal.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPrincipal,
			"principal must be a non-negative amount",
			domainerror.ErrInvalidPrincipal,
		)
	}
	if input.InterestRatePct.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidInterestRate,
			"interest rate must be a non-negative percentage",
			domainerror.ErrInvalidInterestRate,
		)
	}
	if input.BrokerageRatePct.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidBrokerageRate,
			"brokerage rate must be a non-negative percentage",
			domainerror.ErrInvalidBrokerageRate,
		)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEndDateBeforeStartDate,
			"end date must not be before start date",
			domainerror.ErrEndDateBeforeStartDate,
		)
	}
	if input.DayCountBasis < 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDayCountBasis,
			"day count basis must be a positive number of days",
			domainerror.ErrInvalidDayCountBasis,
		)
	}

	result := calc.ComputeAll(
		input.Principal,
		input.InterestRatePct,
		input.BrokerageRatePct,
		input.StartDate,
		input.EndDate,
		input.DayCountBasis,
	)

	return &PreviewCalculationOutput{
		Days:           result.Days,
		Months:         result.Months,
		Interest:       result.Interest,
		Brokerage:      result.Brokerage,
		LenderReturn:   result.LenderReturn,
		LendeeReceived: result.LendeeReceived,
		NetInterest:    result.NetInterest,
	}, nil
}
