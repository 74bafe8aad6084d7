package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("reduces remaining balance", func(t *testing.T) {
		txn := seedTransaction(50000)
		txnRepo := newFakeTransactionRepo(txn)
		pmtRepo := newFakePaymentRepo(txnRepo)
		uc := NewRecordPaymentUseCase(pmtRepo, txnRepo)

		out, err := uc.Execute(ctx, RecordPaymentInput{
			TransactionID: txn.ID,
			PaymentDate:   date(2024, time.January, 10),
			Amount:        decimal.NewFromInt(20000),
			Notes:         "first installment",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.RemainingBalance.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("expected remaining 30000, got %s", out.RemainingBalance)
		}
		if out.Received {
			t.Error("expected transaction to stay open after a partial payment")
		}
	})

	t.Run("marks received on exact payoff", func(t *testing.T) {
		txn := seedTransaction(50000)
		txnRepo := newFakeTransactionRepo(txn)
		pmtRepo := newFakePaymentRepo(txnRepo)
		uc := NewRecordPaymentUseCase(pmtRepo, txnRepo)

		if _, err := uc.Execute(ctx, RecordPaymentInput{
			TransactionID: txn.ID,
			PaymentDate:   date(2024, time.January, 10),
			Amount:        decimal.NewFromInt(20000),
		}); err != nil {
			t.Fatalf("first payment failed: %v", err)
		}
		out, err := uc.Execute(ctx, RecordPaymentInput{
			TransactionID: txn.ID,
			PaymentDate:   date(2024, time.January, 20),
			Amount:        decimal.NewFromInt(30000),
		})
		if err != nil {
			t.Fatalf("second payment failed: %v", err)
		}
		if !out.RemainingBalance.IsZero() {
			t.Errorf("expected zero remaining, got %s", out.RemainingBalance)
		}
		if !out.Received {
			t.Error("expected transaction to be marked received on full payoff")
		}
	})

	t.Run("manual settle override survives a partial payment", func(t *testing.T) {
		txn := seedTransaction(50000)
		txnRepo := newFakeTransactionRepo(txn)
		pmtRepo := newFakePaymentRepo(txnRepo)
		uc := NewRecordPaymentUseCase(pmtRepo, txnRepo)

		if err := txnRepo.UpdateReceived(ctx, txn.ID, true); err != nil {
			t.Fatalf("manual settle failed: %v", err)
		}

		out, err := uc.Execute(ctx, RecordPaymentInput{
			TransactionID: txn.ID,
			PaymentDate:   date(2024, time.January, 10),
			Amount:        decimal.NewFromInt(10000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Received {
			t.Error("expected output to report the stored received state")
		}
		stored, _ := txnRepo.FindByID(ctx, txn.ID)
		if !stored.Received {
			t.Error("expected manual received flag to survive a partial payment")
		}
		if !stored.RemainingBalance.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected remaining 40000, got %s", stored.RemainingBalance)
		}
	})

	t.Run("rejects payment above remaining balance leaving state unchanged", func(t *testing.T) {
		txn := seedTransaction(50000)
		txnRepo := newFakeTransactionRepo(txn)
		pmtRepo := newFakePaymentRepo(txnRepo)
		uc := NewRecordPaymentUseCase(pmtRepo, txnRepo)

		_, err := uc.Execute(ctx, RecordPaymentInput{
			TransactionID: txn.ID,
			PaymentDate:   date(2024, time.January, 10),
			Amount:        decimal.NewFromInt(50001),
		})
		if !errors.Is(err, domainerror.ErrPaymentExceedsBalance) {
			t.Fatalf("expected ErrPaymentExceedsBalance, got %v", err)
		}
		stored, _ := txnRepo.FindByID(ctx, txn.ID)
		if !stored.RemainingBalance.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected remaining balance unchanged at 50000, got %s", stored.RemainingBalance)
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		txn := seedTransaction(50000)
		txnRepo := newFakeTransactionRepo(txn)
		uc := NewRecordPaymentUseCase(newFakePaymentRepo(txnRepo), txnRepo)

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := uc.Execute(ctx, RecordPaymentInput{
				TransactionID: txn.ID,
				PaymentDate:   date(2024, time.January, 10),
				Amount:        amount,
			})
			if !errors.Is(err, domainerror.ErrInvalidPaymentAmount) {
				t.Errorf("amount %s: expected ErrInvalidPaymentAmount, got %v", amount, err)
			}
		}
	})

	t.Run("returns not found for unknown transaction", func(t *testing.T) {
		txnRepo := newFakeTransactionRepo()
		uc := NewRecordPaymentUseCase(newFakePaymentRepo(txnRepo), txnRepo)

		_, err := uc.Execute(ctx, RecordPaymentInput{
			TransactionID: uuid.New(),
			PaymentDate:   date(2024, time.January, 10),
			Amount:        decimal.NewFromInt(100),
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestReversePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("restores balance and reopens unconditionally", func(t *testing.T) {
		txn := seedTransaction(50000)
		txnRepo := newFakeTransactionRepo(txn)
		pmtRepo := newFakePaymentRepo(txnRepo)
		record := NewRecordPaymentUseCase(pmtRepo, txnRepo)
		reverse := NewReversePaymentUseCase(pmtRepo, txnRepo)

		if _, err := record.Execute(ctx, RecordPaymentInput{
			TransactionID: txn.ID,
			PaymentDate:   date(2024, time.January, 10),
			Amount:        decimal.NewFromInt(20000),
		}); err != nil {
			t.Fatalf("first payment failed: %v", err)
		}
		second, err := record.Execute(ctx, RecordPaymentInput{
			TransactionID: txn.ID,
			PaymentDate:   date(2024, time.January, 20),
			Amount:        decimal.NewFromInt(30000),
		})
		if err != nil {
			t.Fatalf("second payment failed: %v", err)
		}

		out, err := reverse.Execute(ctx, ReversePaymentInput{PaymentID: second.Payment.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.RemainingBalance.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("expected remaining 30000 after reversal, got %s", out.RemainingBalance)
		}
		stored, _ := txnRepo.FindByID(ctx, txn.ID)
		if stored.Received {
			t.Error("expected reversal to reopen the transaction")
		}
	})

	t.Run("round-trip restores the prior balance exactly", func(t *testing.T) {
		txn := seedTransaction(50000)
		txnRepo := newFakeTransactionRepo(txn)
		pmtRepo := newFakePaymentRepo(txnRepo)
		record := NewRecordPaymentUseCase(pmtRepo, txnRepo)
		reverse := NewReversePaymentUseCase(pmtRepo, txnRepo)

		before, _ := txnRepo.FindByID(ctx, txn.ID)
		out, err := record.Execute(ctx, RecordPaymentInput{
			TransactionID: txn.ID,
			PaymentDate:   date(2024, time.February, 1),
			Amount:        decimal.RequireFromString("12345.67"),
		})
		if err != nil {
			t.Fatalf("payment failed: %v", err)
		}
		if _, err := reverse.Execute(ctx, ReversePaymentInput{PaymentID: out.Payment.ID}); err != nil {
			t.Fatalf("reversal failed: %v", err)
		}

		after, _ := txnRepo.FindByID(ctx, txn.ID)
		if !after.RemainingBalance.Equal(before.RemainingBalance) {
			t.Errorf("expected balance restored to %s, got %s", before.RemainingBalance, after.RemainingBalance)
		}
	})

	t.Run("returns not found for unknown payment", func(t *testing.T) {
		txnRepo := newFakeTransactionRepo()
		uc := NewReversePaymentUseCase(newFakePaymentRepo(txnRepo), txnRepo)

		_, err := uc.Execute(ctx, ReversePaymentInput{PaymentID: uuid.New()})
		if !errors.Is(err, domainerror.ErrPaymentNotFound) {
			t.Errorf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}
