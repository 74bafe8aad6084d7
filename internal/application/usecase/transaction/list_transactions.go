package transaction

import (
	"context"
	"fmt"

	"github.com/brokerledger/backend/internal/application/adapter"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Filter adapter.TransactionFilter
}

// ListTransactionsOutput represents the output of a transaction listing.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles filtered transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists transactions matching the filter, newest first, with party
// names resolved for display.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	rows, err := uc.transactionRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	outputs := make([]*TransactionOutput, 0, len(rows))
	for _, row := range rows {
		outputs = append(outputs, toTransactionOutputWithParties(row))
	}
	return &ListTransactionsOutput{Transactions: outputs}, nil
}
