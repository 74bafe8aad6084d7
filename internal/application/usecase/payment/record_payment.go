// Package payment contains partial-payment ledger use cases.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// RecordPaymentInput represents the input for recording a partial payment.
type RecordPaymentInput struct {
	TransactionID uuid.UUID
	PaymentDate   time.Time
	Amount        decimal.Decimal
	Notes         string
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	Payment          *entity.PartialPayment
	RemainingBalance decimal.Decimal
	Received         bool
}

// RecordPaymentUseCase handles partial-payment recording. The balance update
// and the payment insert happen in one persistence unit of work.
type RecordPaymentUseCase struct {
	paymentRepo     adapter.PaymentRepository
	transactionRepo adapter.TransactionRepository
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	transactionRepo adapter.TransactionRepository,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute records the payment against the transaction's remaining balance.
// A payment that brings the balance to exactly zero marks the transaction
// received; a partial payment leaves a manually set received flag alone.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

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

	if input.Amount.GreaterThan(txn.RemainingBalance) {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentExceedsBalance,
			fmt.Sprintf("payment amount %s exceeds remaining balance %s",
				input.Amount.StringFixed(2), txn.RemainingBalance.StringFixed(2)),
			domainerror.ErrPaymentExceedsBalance,
		)
	}

	newRemaining := txn.RemainingBalance.Sub(input.Amount)
	settled := newRemaining.IsZero()

	pmt := entity.NewPartialPayment(input.TransactionID, input.PaymentDate, input.Amount, input.Notes)
	if err := uc.paymentRepo.Record(ctx, pmt, newRemaining, settled); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return &RecordPaymentOutput{
		Payment:          pmt,
		RemainingBalance: newRemaining,
		Received:         settled || txn.Received,
	}, nil
}
