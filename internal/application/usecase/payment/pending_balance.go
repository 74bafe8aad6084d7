package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/calc"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// PendingBalanceInput represents the input for an as-of pending calculation.
// A zero AsOfDate means today.
type PendingBalanceInput struct {
	TransactionID uuid.UUID
	AsOfDate      time.Time
}

// PendingBalanceOutput represents the pending figures on the unpaid portion
// of a transaction since its last cash movement.
type PendingBalanceOutput struct {
	TransactionID         uuid.UUID
	AsOfDate              time.Time
	RemainingBalance      decimal.Decimal
	DaysSinceMovement     int
	PendingInterest       decimal.Decimal
	PendingBrokerage      decimal.Decimal
	RemainingLenderReturn decimal.Decimal
}

// PendingBalanceUseCase computes interest and brokerage accrued on the
// remaining balance since the most recent cash movement. The result is
// advisory; the only side effect is an audit snapshot row.
type PendingBalanceUseCase struct {
	transactionRepo adapter.TransactionRepository
	paymentRepo     adapter.PaymentRepository
	snapshotRepo    adapter.SnapshotRepository
}

// NewPendingBalanceUseCase creates a new PendingBalanceUseCase instance.
func NewPendingBalanceUseCase(
	transactionRepo adapter.TransactionRepository,
	paymentRepo adapter.PaymentRepository,
	snapshotRepo adapter.SnapshotRepository,
) *PendingBalanceUseCase {
	return &PendingBalanceUseCase{
		transactionRepo: transactionRepo,
		paymentRepo:     paymentRepo,
		snapshotRepo:    snapshotRepo,
	}
}

// Execute computes the pending figures. The reference date is the latest
// payment_date among the transaction's payments when any exist, otherwise
// the start date. Same-date payments tie-break on insertion recency. The day
// count is a plain calendar difference floored at zero; unlike the
// creation-time day count it does not include both boundary days, so asking
// on the day of the last movement yields zero accrual. The pending
// computation always runs on a 365-day basis regardless of the transaction's
// stored basis.
func (uc *PendingBalanceUseCase) Execute(ctx context.Context, input PendingBalanceInput) (*PendingBalanceOutput, error) {
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

	asOf := input.AsOfDate
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	if txn.RemainingBalance.IsZero() {
		return &PendingBalanceOutput{
			TransactionID:         txn.ID,
			AsOfDate:              asOf,
			RemainingBalance:      decimal.Zero,
			DaysSinceMovement:     0,
			PendingInterest:       decimal.Zero,
			PendingBrokerage:      decimal.Zero,
			RemainingLenderReturn: decimal.Zero,
		}, nil
	}

	refDate, err := uc.referenceDate(ctx, txn)
	if err != nil {
		return nil, err
	}

	days := daysSince(refDate, asOf)

	interest := calc.InterestAmount(txn.RemainingBalance, txn.InterestRate, days, calc.DefaultDayCountBasis)
	brokerage := calc.BrokerageAmount(txn.RemainingBalance, txn.BrokerageRate, days, calc.DefaultDayCountBasis)

	out := &PendingBalanceOutput{
		TransactionID:         txn.ID,
		AsOfDate:              asOf,
		RemainingBalance:      txn.RemainingBalance,
		DaysSinceMovement:     days,
		PendingInterest:       interest,
		PendingBrokerage:      brokerage,
		RemainingLenderReturn: calc.RemainingLenderReturn(txn.RemainingBalance, interest),
	}

	snapshot := &entity.BalanceSnapshot{
		ID:                uuid.New(),
		TransactionID:     txn.ID,
		CalculationDate:   asOf,
		RemainingBalance:  txn.RemainingBalance,
		InterestAmount:    interest,
		BrokerageAmount:   brokerage,
		DaysSinceMovement: days,
		CreatedAt:         time.Now().UTC(),
	}
	if err := uc.snapshotRepo.Create(ctx, snapshot); err != nil {
		// The snapshot is an audit convenience; the computed figures are
		// still valid without it.
		slog.Warn("Failed to persist balance snapshot", "transactionID", txn.ID, "error", err)
	}

	return out, nil
}

// referenceDate picks the date of the last cash movement. Payments are
// already ordered by payment_date descending with insertion recency as the
// tie-break, so the first row wins.
func (uc *PendingBalanceUseCase) referenceDate(ctx context.Context, txn *entity.Transaction) (time.Time, error) {
	payments, err := uc.paymentRepo.FindByTransaction(ctx, txn.ID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to list payments: %w", err)
	}
	if len(payments) > 0 {
		return payments[0].PaymentDate, nil
	}
	return txn.StartDate, nil
}

// daysSince is the plain calendar-day difference floored at zero.
func daysSince(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	days := int(toDay.Sub(fromDay).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
