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

func validTerms(lenderID, borrowerID uuid.UUID) Terms {
	return Terms{
		LenderPartyID:    lenderID,
		BorrowerPartyID:  borrowerID,
		Principal:        decimal.NewFromInt(100000),
		Condition:        "monthly interest",
		StartDate:        date(2024, time.January, 1),
		EndDate:          date(2024, time.January, 31),
		InterestRatePct:  decimal.NewFromInt(12),
		BrokerageRatePct: decimal.NewFromInt(1),
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("creates transaction with derived snapshot", func(t *testing.T) {
		lender, borrower := lenderAndBorrower()
		partyRepo := newFakePartyRepo(lender, borrower)
		txnRepo := newFakeTransactionRepo()
		uc := NewCreateTransactionUseCase(txnRepo, partyRepo)

		out, err := uc.Execute(ctx, CreateTransactionInput{Terms: validTerms(lender.ID, borrower.ID)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		txn := out.Transaction
		if txn.DayCount != 31 {
			t.Errorf("expected 31 days, got %d", txn.DayCount)
		}
		if got, want := txn.InterestAmount.String(), "12230.14"; got != want {
			t.Errorf("expected interest %s, got %s", want, got)
		}
		if got, want := txn.BrokerageAmount.String(), "1019.18"; got != want {
			t.Errorf("expected brokerage %s, got %s", want, got)
		}
		if got, want := txn.LenderReturnAmount.String(), "112230.14"; got != want {
			t.Errorf("expected lender return %s, got %s", want, got)
		}
		if got, want := txn.LendeeReceivedAmount.String(), "111210.96"; got != want {
			t.Errorf("expected lendee received %s, got %s", want, got)
		}
		if got, want := txn.NetInterestAmount.String(), "11210.96"; got != want {
			t.Errorf("expected net interest %s, got %s", want, got)
		}
		if !txn.RemainingBalance.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("expected remaining balance to start at principal, got %s", txn.RemainingBalance)
		}
		if txn.Received {
			t.Error("expected a new transaction to start unsettled")
		}
		if !txn.InterestRate.Equal(decimal.RequireFromString("0.12")) {
			t.Errorf("expected stored interest rate 0.12, got %s", txn.InterestRate)
		}
		if txn.DayCountBasis != 365 {
			t.Errorf("expected default 365 basis, got %d", txn.DayCountBasis)
		}
		if _, err := txnRepo.FindByID(ctx, txn.ID); err != nil {
			t.Errorf("expected transaction to be persisted: %v", err)
		}
	})

	t.Run("rejects missing lender", func(t *testing.T) {
		lender, borrower := lenderAndBorrower()
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), newFakePartyRepo(lender, borrower))

		terms := validTerms(lender.ID, borrower.ID)
		terms.LenderPartyID = uuid.Nil
		_, err := uc.Execute(ctx, CreateTransactionInput{Terms: terms})
		if !errors.Is(err, domainerror.ErrLenderPartyRequired) {
			t.Errorf("expected ErrLenderPartyRequired, got %v", err)
		}
	})

	t.Run("rejects negative principal", func(t *testing.T) {
		lender, borrower := lenderAndBorrower()
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), newFakePartyRepo(lender, borrower))

		terms := validTerms(lender.ID, borrower.ID)
		terms.Principal = decimal.NewFromInt(-100)
		_, err := uc.Execute(ctx, CreateTransactionInput{Terms: terms})
		if !errors.Is(err, domainerror.ErrInvalidPrincipal) {
			t.Errorf("expected ErrInvalidPrincipal, got %v", err)
		}
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		lender, borrower := lenderAndBorrower()
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), newFakePartyRepo(lender, borrower))

		terms := validTerms(lender.ID, borrower.ID)
		terms.EndDate = date(2023, time.December, 1)
		_, err := uc.Execute(ctx, CreateTransactionInput{Terms: terms})
		if !errors.Is(err, domainerror.ErrEndDateBeforeStartDate) {
			t.Errorf("expected ErrEndDateBeforeStartDate, got %v", err)
		}
	})

	t.Run("rejects unknown party reference", func(t *testing.T) {
		lender, borrower := lenderAndBorrower()
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), newFakePartyRepo(lender))

		_, err := uc.Execute(ctx, CreateTransactionInput{Terms: validTerms(lender.ID, borrower.ID)})
		if !errors.Is(err, domainerror.ErrPartyNotFound) {
			t.Errorf("expected ErrPartyNotFound, got %v", err)
		}
	})

	t.Run("rejects unknown intermediary reference", func(t *testing.T) {
		lender, borrower := lenderAndBorrower()
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), newFakePartyRepo(lender, borrower))

		terms := validTerms(lender.ID, borrower.ID)
		missing := uuid.New()
		terms.IntermediaryPartyID = &missing
		_, err := uc.Execute(ctx, CreateTransactionInput{Terms: terms})
		if !errors.Is(err, domainerror.ErrPartyNotFound) {
			t.Errorf("expected ErrPartyNotFound, got %v", err)
		}
	})
}
