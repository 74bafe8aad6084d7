package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/adapter"
)

// GetSummaryInput represents the input for the aggregated summary. The same
// filter options as the listing apply.
type GetSummaryInput struct {
	Filter adapter.TransactionFilter
}

// GetSummaryOutput represents aggregated figures over the matching set.
type GetSummaryOutput struct {
	PrincipalTotal   decimal.Decimal
	InterestTotal    decimal.Decimal
	BrokerageTotal   decimal.Decimal
	NetInterestTotal decimal.Decimal
	ReceivedCount    int64
	PendingCount     int64
	TotalCount       int64
}

// GetSummaryUseCase handles the dashboard summary aggregation.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{transactionRepo: transactionRepo}
}

// Execute aggregates totals across the transactions matching the filter.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	totals, err := uc.transactionRepo.GetTotals(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transaction totals: %w", err)
	}

	return &GetSummaryOutput{
		PrincipalTotal:   totals.PrincipalTotal,
		InterestTotal:    totals.InterestTotal,
		BrokerageTotal:   totals.BrokerageTotal,
		NetInterestTotal: totals.NetInterestTotal,
		ReceivedCount:    totals.ReceivedCount,
		PendingCount:     totals.PendingCount,
		TotalCount:       totals.ReceivedCount + totals.PendingCount,
	}, nil
}
