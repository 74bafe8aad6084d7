package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*UpdateTransactionUseCase, *fakeTransactionRepo, Terms, uuid.UUID) {
		t.Helper()
		lender, borrower := lenderAndBorrower()
		partyRepo := newFakePartyRepo(lender, borrower)
		txnRepo := newFakeTransactionRepo()

		createOut, err := NewCreateTransactionUseCase(txnRepo, partyRepo).
			Execute(ctx, CreateTransactionInput{Terms: validTerms(lender.ID, borrower.ID)})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}

		return NewUpdateTransactionUseCase(txnRepo, partyRepo),
			txnRepo,
			validTerms(lender.ID, borrower.ID),
			createOut.Transaction.ID
	}

	t.Run("keeps remaining balance when principal is unchanged", func(t *testing.T) {
		uc, txnRepo, terms, id := seed(t)

		// Simulate a prior partial payment.
		stored, _ := txnRepo.FindByID(ctx, id)
		stored.RemainingBalance = decimal.NewFromInt(60000)
		_ = txnRepo.Update(ctx, stored)

		terms.InterestRatePct = decimal.NewFromInt(15)
		out, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: id, Terms: terms})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Transaction.RemainingBalance.Equal(decimal.NewFromInt(60000)) {
			t.Errorf("expected remaining balance 60000 untouched, got %s", out.Transaction.RemainingBalance)
		}
		if !out.Transaction.InterestRate.Equal(decimal.RequireFromString("0.15")) {
			t.Errorf("expected updated interest rate 0.15, got %s", out.Transaction.InterestRate)
		}
	})

	t.Run("resets remaining balance when principal changes", func(t *testing.T) {
		uc, txnRepo, terms, id := seed(t)

		stored, _ := txnRepo.FindByID(ctx, id)
		stored.RemainingBalance = decimal.NewFromInt(60000)
		_ = txnRepo.Update(ctx, stored)

		terms.Principal = decimal.NewFromInt(120000)
		out, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: id, Terms: terms})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Transaction.RemainingBalance.Equal(decimal.NewFromInt(120000)) {
			t.Errorf("expected remaining balance reset to 120000, got %s", out.Transaction.RemainingBalance)
		}
	})

	t.Run("recomputes derived amounts from new terms", func(t *testing.T) {
		uc, _, terms, id := seed(t)

		terms.EndDate = date(2024, time.December, 30) // 365 days inclusive
		out, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: id, Terms: terms})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.DayCount != 365 {
			t.Errorf("expected 365 days, got %d", out.Transaction.DayCount)
		}
		if got, want := out.Transaction.InterestAmount.String(), "144000"; got != want {
			t.Errorf("expected interest %s over a full year, got %s", want, got)
		}
	})

	t.Run("returns not found for unknown transaction", func(t *testing.T) {
		uc, _, terms, _ := seed(t)

		_, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: uuid.New(), Terms: terms})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("validates terms before loading", func(t *testing.T) {
		uc, _, terms, id := seed(t)

		terms.InterestRatePct = decimal.NewFromInt(-1)
		_, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: id, Terms: terms})
		if !errors.Is(err, domainerror.ErrInvalidInterestRate) {
			t.Errorf("expected ErrInvalidInterestRate, got %v", err)
		}
	})
}
