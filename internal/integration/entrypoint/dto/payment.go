package dto

import (
	"time"

	"github.com/brokerledger/backend/internal/application/usecase/payment"
	"github.com/brokerledger/backend/internal/domain/entity"
)

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	PaymentDate string `json:"payment_date" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Notes       string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	PaymentDate   string    `json:"payment_date"`
	Amount        string    `json:"amount"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordPaymentResponse represents the response after recording a payment.
type RecordPaymentResponse struct {
	Payment          PaymentResponse `json:"payment"`
	RemainingBalance string          `json:"remaining_balance"`
	Received         bool            `json:"received"`
}

// ReversePaymentResponse represents the response after reversing a payment.
type ReversePaymentResponse struct {
	TransactionID    string `json:"transaction_id"`
	RemainingBalance string `json:"remaining_balance"`
}

// PaymentListResponse represents the response for listing payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// PendingBalanceResponse represents an as-of pending calculation in API
// responses.
type PendingBalanceResponse struct {
	TransactionID         string `json:"transaction_id"`
	AsOfDate              string `json:"as_of_date"`
	RemainingBalance      string `json:"remaining_balance"`
	DaysSinceMovement     int    `json:"days_since_movement"`
	PendingInterest       string `json:"pending_interest"`
	PendingBrokerage      string `json:"pending_brokerage"`
	RemainingLenderReturn string `json:"remaining_lender_return"`
}

// ToPaymentResponse converts a domain PartialPayment entity to its DTO.
func ToPaymentResponse(pmt *entity.PartialPayment) PaymentResponse {
	return PaymentResponse{
		ID:            pmt.ID.String(),
		TransactionID: pmt.TransactionID.String(),
		PaymentDate:   pmt.PaymentDate.Format("2006-01-02"),
		Amount:        pmt.Amount.StringFixed(2),
		Notes:         pmt.Notes,
		CreatedAt:     pmt.CreatedAt,
	}
}

// ToPaymentListResponse converts a payment slice to its list DTO.
func ToPaymentListResponse(payments []*entity.PartialPayment) PaymentListResponse {
	response := PaymentListResponse{Payments: make([]PaymentResponse, len(payments))}
	for i, pmt := range payments {
		response.Payments[i] = ToPaymentResponse(pmt)
	}
	return response
}

// ToPendingBalanceResponse converts a pending-balance output to its DTO.
// Pending figures are rounded for display here; internally they stay exact.
func ToPendingBalanceResponse(output *payment.PendingBalanceOutput) PendingBalanceResponse {
	return PendingBalanceResponse{
		TransactionID:         output.TransactionID.String(),
		AsOfDate:              output.AsOfDate.Format("2006-01-02"),
		RemainingBalance:      output.RemainingBalance.StringFixed(2),
		DaysSinceMovement:     output.DaysSinceMovement,
		PendingInterest:       output.PendingInterest.StringFixed(2),
		PendingBrokerage:      output.PendingBrokerage.StringFixed(2),
		RemainingLenderReturn: output.RemainingLenderReturn.StringFixed(2),
	}
}
