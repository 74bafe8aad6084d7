package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// ListPaymentsInput represents the input for listing a transaction's payments.
type ListPaymentsInput struct {
	TransactionID uuid.UUID
}

// ListPaymentsOutput represents the output of a payment listing.
type ListPaymentsOutput struct {
	Payments []*entity.PartialPayment
}

// ListPaymentsUseCase handles payment history retrieval.
type ListPaymentsUseCase struct {
	paymentRepo     adapter.PaymentRepository
	transactionRepo adapter.TransactionRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(
	paymentRepo adapter.PaymentRepository,
	transactionRepo adapter.TransactionRepository,
) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the transaction's payments, latest payment date first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	if _, err := uc.transactionRepo.FindByID(ctx, input.TransactionID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	payments, err := uc.paymentRepo.FindByTransaction(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return &ListPaymentsOutput{Payments: payments}, nil
}
