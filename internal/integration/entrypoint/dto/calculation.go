package dto

import (
	"github.com/brokerledger/backend/internal/application/usecase/transaction"
)

// PreviewCalculationRequest represents the request body for a stateless
// calculation preview. Rates are percentages.
type PreviewCalculationRequest struct {
	Principal        string `json:"principal" binding:"required"`
	InterestRatePct  string `json:"interest_rate_pct" binding:"required"`
	BrokerageRatePct string `json:"brokerage_rate_pct,omitempty"`
	StartDate        string `json:"start_date" binding:"required"`
	EndDate          string `json:"end_date" binding:"required"`
	DayCountBasis    int    `json:"day_count_basis,omitempty"`
}

// PreviewCalculationResponse represents the derived figures of a preview.
type PreviewCalculationResponse struct {
	Days           int    `json:"days"`
	Months         string `json:"months"`
	Interest       string `json:"interest"`
	Brokerage      string `json:"brokerage"`
	LenderReturn   string `json:"lender_return"`
	LendeeReceived string `json:"lendee_received"`
	NetInterest    string `json:"net_interest"`
}

// ToPreviewCalculationResponse converts a preview output to its response DTO.
func ToPreviewCalculationResponse(output *transaction.PreviewCalculationOutput) PreviewCalculationResponse {
	return PreviewCalculationResponse{
		Days:           output.Days,
		Months:         output.Months.StringFixed(2),
		Interest:       output.Interest.StringFixed(2),
		Brokerage:      output.Brokerage.StringFixed(2),
		LenderReturn:   output.LenderReturn.StringFixed(2),
		LendeeReceived: output.LendeeReceived.StringFixed(2),
		NetInterest:    output.NetInterest.StringFixed(2),
	}
}
