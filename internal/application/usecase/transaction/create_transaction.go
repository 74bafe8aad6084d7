package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/calc"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

var oneHundred = decimal.NewFromInt(100)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Terms Terms
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	partyRepo       adapter.PartyRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	partyRepo adapter.PartyRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		partyRepo:       partyRepo,
	}
}

// Execute performs the transaction creation. The full derived snapshot is
// computed once here and stored with the record.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	terms := input.Terms
	if err := validateTerms(terms); err != nil {
		return nil, err
	}

	if err := uc.checkParties(ctx, terms); err != nil {
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

	now := time.Now().UTC()
	txn := &entity.Transaction{
		ID:                   uuid.New(),
		LenderPartyID:        terms.LenderPartyID,
		BorrowerPartyID:      terms.BorrowerPartyID,
		IntermediaryPartyID:  terms.IntermediaryPartyID,
		Principal:            terms.Principal,
		Condition:            terms.Condition,
		StartDate:            terms.StartDate,
		EndDate:              terms.EndDate,
		InterestRate:         terms.InterestRatePct.Div(oneHundred),
		BrokerageRate:        terms.BrokerageRatePct.Div(oneHundred),
		DayCountBasis:        basis,
		DayCount:             result.Days,
		MonthCount:           result.Months,
		InterestAmount:       result.Interest,
		BrokerageAmount:      result.Brokerage,
		LenderReturnAmount:   result.LenderReturn,
		LendeeReceivedAmount: result.LendeeReceived,
		NetInterestAmount:    result.NetInterest,
		RemainingBalance:     terms.Principal,
		Received:             false,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: toTransactionOutput(txn)}, nil
}

// checkParties verifies that every referenced party exists in the directory.
func (uc *CreateTransactionUseCase) checkParties(ctx context.Context, terms Terms) error {
	return checkPartyReferences(ctx, uc.partyRepo, terms)
}

// checkPartyReferences verifies the lender, borrower and optional
// intermediary references against the party directory.
func checkPartyReferences(ctx context.Context, partyRepo adapter.PartyRepository, terms Terms) error {
	ids := []uuid.UUID{terms.LenderPartyID, terms.BorrowerPartyID}
	if terms.IntermediaryPartyID != nil {
		ids = append(ids, *terms.IntermediaryPartyID)
	}
	for _, id := range ids {
		if _, err := partyRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, domainerror.ErrPartyNotFound) {
				return domainerror.NewPartyError(
					domainerror.ErrCodePartyNotFound,
					fmt.Sprintf("referenced party %s not found", id),
					domainerror.ErrPartyNotFound,
				)
			}
			return fmt.Errorf("failed to check party reference: %w", err)
		}
	}
	return nil
}
