package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/adapter"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// ReversePaymentInput represents the input for reversing a recorded payment.
type ReversePaymentInput struct {
	PaymentID uuid.UUID
}

// ReversePaymentOutput represents the output of a payment reversal.
type ReversePaymentOutput struct {
	TransactionID    uuid.UUID
	RemainingBalance decimal.Decimal
}

// ReversePaymentUseCase handles removal of erroneously recorded payments.
type ReversePaymentUseCase struct {
	paymentRepo     adapter.PaymentRepository
	transactionRepo adapter.TransactionRepository
}

// NewReversePaymentUseCase creates a new ReversePaymentUseCase instance.
func NewReversePaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	transactionRepo adapter.TransactionRepository,
) *ReversePaymentUseCase {
	return &ReversePaymentUseCase{
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute restores the reversed amount to the transaction's remaining balance
// and deletes the payment. Reversing always reopens the transaction, even
// when other payments would still leave the balance at zero.
func (uc *ReversePaymentUseCase) Execute(ctx context.Context, input ReversePaymentInput) (*ReversePaymentOutput, error) {
	pmt, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodePaymentNotFound,
				"payment not found",
				domainerror.ErrPaymentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	txn, err := uc.transactionRepo.FindByID(ctx, pmt.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for payment: %w", err)
	}

	newRemaining := txn.RemainingBalance.Add(pmt.Amount)
	if err := uc.paymentRepo.Reverse(ctx, pmt.ID, newRemaining); err != nil {
		return nil, fmt.Errorf("failed to reverse payment: %w", err)
	}

	return &ReversePaymentOutput{
		TransactionID:    pmt.TransactionID,
		RemainingBalance: newRemaining,
	}, nil
}
