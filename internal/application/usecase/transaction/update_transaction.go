package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/calc"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for editing a transaction's terms.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Terms         Terms
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles edits to a transaction's terms.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	partyRepo       adapter.PartyRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	partyRepo adapter.PartyRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		partyRepo:       partyRepo,
	}
}

// Execute re-derives the stored snapshot from the new terms. When the
// principal is unchanged the remaining balance is kept; when it changes the
// remaining balance resets to the new principal and the existing payment
// history is NOT re-reconciled against it. That mirrors the ledger this
// system replaces and is a documented limitation, not an oversight.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	terms := input.Terms
	if err := validateTerms(terms); err != nil {
		return nil, err
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

	if err := checkPartyReferences(ctx, uc.partyRepo, terms); err != nil {
		return nil, err
	}

	basis := terms.DayCountBasis
	if basis == 0 {
		basis = calc.DefaultDayCountBasis
	}

	result := calc.ComputeAll(
		terms.Principal,
		terms.InterestRatePct,
		terms.BrokerageRatePct,
		terms.StartDate,
		terms.EndDate,
		basis,
	)

	if !txn.Principal.Equal(terms.Principal) {
		slog.Info("Principal changed on edit, resetting remaining balance",
			"transactionID", txn.ID,
			"oldPrincipal", txn.Principal,
			"newPrincipal", terms.Principal,
		)
		txn.RemainingBalance = terms.Principal
	}

	txn.LenderPartyID = terms.LenderPartyID
	txn.BorrowerPartyID = terms.BorrowerPartyID
	txn.IntermediaryPartyID = terms.IntermediaryPartyID
	txn.Principal = terms.Principal
	txn.Condition = terms.Condition
	txn.StartDate = terms.StartDate
	txn.EndDate = terms.EndDate
	txn.InterestRate = terms.InterestRatePct.Div(oneHundred)
	txn.BrokerageRate = terms.BrokerageRatePct.Div(oneHundred)
	txn.DayCountBasis = basis
	txn.DayCount = result.Days
	txn.MonthCount = result.Months
	txn.InterestAmount = result.Interest
	txn.BrokerageAmount = result.Brokerage
	txn.LenderReturnAmount = result.LenderReturn
	txn.LendeeReceivedAmount = result.LendeeReceived
	txn.NetInterestAmount = result.NetInterest
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(txn)}, nil
}
