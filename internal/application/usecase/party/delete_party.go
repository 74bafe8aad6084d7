package party

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/application/adapter"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// DeletePartyInput represents the input for party deletion.
type DeletePartyInput struct {
	PartyID uuid.UUID
}

// DeletePartyUseCase handles party deletion logic.
type DeletePartyUseCase struct {
	partyRepo adapter.PartyRepository
}

// NewDeletePartyUseCase creates a new DeletePartyUseCase instance.
func NewDeletePartyUseCase(partyRepo adapter.PartyRepository) *DeletePartyUseCase {
	return &DeletePartyUseCase{partyRepo: partyRepo}
}

// Execute performs the party deletion. A party that is still referenced by
// transactions cannot be removed.
func (uc *DeletePartyUseCase) Execute(ctx context.Context, input DeletePartyInput) error {
	if _, err := uc.partyRepo.FindByID(ctx, input.PartyID); err != nil {
		if errors.Is(err, domainerror.ErrPartyNotFound) {
			return domainerror.NewPartyError(
				domainerror.ErrCodePartyNotFound,
				"party not found",
				domainerror.ErrPartyNotFound,
			)
		}
		return fmt.Errorf("failed to load party: %w", err)
	}

	refs, err := uc.partyRepo.CountTransactionReferences(ctx, input.PartyID)
	if err != nil {
		return fmt.Errorf("failed to count party references: %w", err)
	}
	if refs > 0 {
		return domainerror.NewPartyError(
			domainerror.ErrCodePartyInUse,
			fmt.Sprintf("cannot delete party - it is used in %d transactions", refs),
			domainerror.ErrPartyInUse,
		)
	}

	if err := uc.partyRepo.Delete(ctx, input.PartyID); err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	return nil
}
