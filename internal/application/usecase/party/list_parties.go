package party

import (
	"context"
	"fmt"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// ListPartiesInput represents the input for listing parties.
type ListPartiesInput struct {
	// Role filters the directory; empty lists every role.
	Role entity.PartyRole
}

// ListPartiesOutput represents the output of listing parties.
type ListPartiesOutput struct {
	Parties []*entity.Party
}

// ListPartiesUseCase handles party listing logic.
type ListPartiesUseCase struct {
	partyRepo adapter.PartyRepository
}

// NewListPartiesUseCase creates a new ListPartiesUseCase instance.
func NewListPartiesUseCase(partyRepo adapter.PartyRepository) *ListPartiesUseCase {
	return &ListPartiesUseCase{partyRepo: partyRepo}
}

// Execute performs the party listing.
func (uc *ListPartiesUseCase) Execute(ctx context.Context, input ListPartiesInput) (*ListPartiesOutput, error) {
	if input.Role == "" {
		parties, err := uc.partyRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list parties: %w", err)
		}
		return &ListPartiesOutput{Parties: parties}, nil
	}

	if !isValidPartyRole(input.Role) {
		return nil, domainerror.NewPartyError(
			domainerror.ErrCodeInvalidPartyRole,
			"party role must be 'lender', 'borrower' or 'intermediary'",
			domainerror.ErrInvalidPartyRole,
		)
	}

	parties, err := uc.partyRepo.FindByRole(ctx, input.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return &ListPartiesOutput{Parties: parties}, nil
}
