package dto

import (
	"time"

	"github.com/brokerledger/backend/internal/application/usecase/transaction"
)

// TransactionTermsRequest represents the request body for transaction
// creation and term edits. Rates are percentages (12.5 means 12.5%).
type TransactionTermsRequest struct {
	LenderPartyID       string  `json:"lender_party_id" binding:"required"`
	BorrowerPartyID     string  `json:"borrower_party_id" binding:"required"`
	IntermediaryPartyID *string `json:"intermediary_party_id,omitempty"`
	Principal           string  `json:"principal" binding:"required"`
	Condition           string  `json:"condition,omitempty" binding:"omitempty,max=1000"`
	StartDate           string  `json:"start_date" binding:"required"`
	EndDate             string  `json:"end_date" binding:"required"`
	InterestRatePct     string  `json:"interest_rate_pct" binding:"required"`
	BrokerageRatePct    string  `json:"brokerage_rate_pct,omitempty"`
	DayCountBasis       int     `json:"day_count_basis,omitempty"`
}

// SetReceivedRequest represents the request body for the manual settle toggle.
type SetReceivedRequest struct {
	Received *bool `json:"received" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID string `json:"id"`

	LenderPartyID         string  `json:"lender_party_id"`
	LenderPartyName       string  `json:"lender_party_name,omitempty"`
	BorrowerPartyID       string  `json:"borrower_party_id"`
	BorrowerPartyName     string  `json:"borrower_party_name,omitempty"`
	IntermediaryPartyID   *string `json:"intermediary_party_id,omitempty"`
	IntermediaryPartyName string  `json:"intermediary_party_name,omitempty"`

	Principal string `json:"principal"`
	Condition string `json:"condition,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	InterestRatePct  string `json:"interest_rate_pct"`
	BrokerageRatePct string `json:"brokerage_rate_pct"`
	DayCountBasis    int    `json:"day_count_basis"`

	DayCount             int    `json:"day_count"`
	MonthCount           string `json:"month_count"`
	InterestAmount       string `json:"interest_amount"`
	BrokerageAmount      string `json:"brokerage_amount"`
	LenderReturnAmount   string `json:"lender_return_amount"`
	LendeeReceivedAmount string `json:"lendee_received_amount"`
	NetInterestAmount    string `json:"net_interest_amount"`

	RemainingBalance string `json:"remaining_balance"`
	Received         bool   `json:"received"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionSummaryResponse represents the aggregated summary response.
type TransactionSummaryResponse struct {
	PrincipalTotal   string `json:"principal_total"`
	InterestTotal    string `json:"interest_total"`
	BrokerageTotal   string `json:"brokerage_total"`
	NetInterestTotal string `json:"net_interest_total"`
	ReceivedCount    int64  `json:"received_count"`
	PendingCount     int64  `json:"pending_count"`
	TotalCount       int64  `json:"total_count"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	hundred := decimalHundred()
	response := TransactionResponse{
		ID:                   txn.ID.String(),
		LenderPartyID:        txn.LenderPartyID.String(),
		LenderPartyName:      txn.LenderPartyName,
		BorrowerPartyID:      txn.BorrowerPartyID.String(),
		BorrowerPartyName:    txn.BorrowerPartyName,
		Principal:            txn.Principal.StringFixed(2),
		Condition:            txn.Condition,
		StartDate:            txn.StartDate.Format("2006-01-02"),
		EndDate:              txn.EndDate.Format("2006-01-02"),
		InterestRatePct:      txn.InterestRate.Mul(hundred).String(),
		BrokerageRatePct:     txn.BrokerageRate.Mul(hundred).String(),
		DayCountBasis:        txn.DayCountBasis,
		DayCount:             txn.DayCount,
		MonthCount:           txn.MonthCount.StringFixed(2),
		InterestAmount:       txn.InterestAmount.StringFixed(2),
		BrokerageAmount:      txn.BrokerageAmount.StringFixed(2),
		LenderReturnAmount:   txn.LenderReturnAmount.StringFixed(2),
		LendeeReceivedAmount: txn.LendeeReceivedAmount.StringFixed(2),
		NetInterestAmount:    txn.NetInterestAmount.StringFixed(2),
		RemainingBalance:     txn.RemainingBalance.StringFixed(2),
		Received:             txn.Received,
		CreatedAt:            txn.CreatedAt,
		UpdatedAt:            txn.UpdatedAt,
	}
	if txn.IntermediaryPartyID != nil {
		id := txn.IntermediaryPartyID.String()
		response.IntermediaryPartyID = &id
		response.IntermediaryPartyName = txn.IntermediaryPartyName
	}
	return response
}

// ToTransactionListResponse converts use-case outputs to a list response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, len(output.Transactions)),
	}
	for i, txn := range output.Transactions {
		response.Transactions[i] = ToTransactionResponse(txn)
	}
	return response
}

// ToTransactionSummaryResponse converts a summary output to its response DTO.
func ToTransactionSummaryResponse(output *transaction.GetSummaryOutput) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		PrincipalTotal:   output.PrincipalTotal.StringFixed(2),
		InterestTotal:    output.InterestTotal.StringFixed(2),
		BrokerageTotal:   output.BrokerageTotal.StringFixed(2),
		NetInterestTotal: output.NetInterestTotal.StringFixed(2),
		ReceivedCount:    output.ReceivedCount,
		PendingCount:     output.PendingCount,
		TotalCount:       output.TotalCount,
	}
}
