package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/application/adapter"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute deletes the transaction together with its payments and balance
// snapshots.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if _, err := uc.transactionRepo.FindByID(ctx, input.TransactionID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return fmt.Errorf("failed to load transaction: %w", err)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
