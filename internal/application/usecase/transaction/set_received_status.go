package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/application/adapter"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// SetReceivedStatusInput represents the input for manually toggling the
// received flag.
type SetReceivedStatusInput struct {
	TransactionID uuid.UUID
	Received      bool
}

// SetReceivedStatusOutput represents the output of a received toggle.
type SetReceivedStatusOutput struct {
	Transaction *TransactionOutput
}

// SetReceivedStatusUseCase handles manual settlement marking. It changes only
// the flag; the remaining balance and payment history stay as they are.
type SetReceivedStatusUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSetReceivedStatusUseCase creates a new SetReceivedStatusUseCase instance.
func NewSetReceivedStatusUseCase(transactionRepo adapter.TransactionRepository) *SetReceivedStatusUseCase {
	return &SetReceivedStatusUseCase{transactionRepo: transactionRepo}
}

// Execute sets the received flag to the requested value.
func (uc *SetReceivedStatusUseCase) Execute(ctx context.Context, input SetReceivedStatusInput) (*SetReceivedStatusOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
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

	if err := uc.transactionRepo.UpdateReceived(ctx, input.TransactionID, input.Received); err != nil {
		return nil, fmt.Errorf("failed to update received status: %w", err)
	}

	txn.Received = input.Received
	return &SetReceivedStatusOutput{Transaction: toTransactionOutput(txn)}, nil
}
