package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/application/adapter"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// GetTransactionInput represents the input for retrieving one transaction.
type GetTransactionInput struct {
	TransactionID uuid.UUID
}

// GetTransactionOutput represents the output of a transaction lookup.
type GetTransactionOutput struct {
	Transaction *TransactionOutput
}

// GetTransactionUseCase handles single-transaction retrieval.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute retrieves the transaction with its party names resolved.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	twp, err := uc.transactionRepo.FindByIDWithParties(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	return &GetTransactionOutput{Transaction: toTransactionOutputWithParties(twp)}, nil
}
