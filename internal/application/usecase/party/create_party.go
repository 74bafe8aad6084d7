// Package party contains party-directory use cases.
package party

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// CreatePartyInput represents the input for party creation.
type CreatePartyInput struct {
	Role            entity.PartyRole
	Name            string
	Contact         string
	Address         string
	OwnerName       string
	OwnerPhone      string
	AccountantName  string
	AccountantPhone string
}

// CreatePartyOutput represents the output of party creation.
type CreatePartyOutput struct {
	Party *entity.Party
}

// CreatePartyUseCase handles party creation logic.
type CreatePartyUseCase struct {
	partyRepo adapter.PartyRepository
}

// NewCreatePartyUseCase creates a new CreatePartyUseCase instance.
func NewCreatePartyUseCase(partyRepo adapter.PartyRepository) *CreatePartyUseCase {
	return &CreatePartyUseCase{partyRepo: partyRepo}
}

// Execute performs the party creation.
func (uc *CreatePartyUseCase) Execute(ctx context.Context, input CreatePartyInput) (*CreatePartyOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPartyError(
			domainerror.ErrCodePartyNameRequired,
			"party name is required",
			domainerror.ErrPartyNameRequired,
		)
	}

	if !isValidPartyRole(input.Role) {
		return nil, domainerror.NewPartyError(
			domainerror.ErrCodeInvalidPartyRole,
			"party role must be 'lender', 'borrower' or 'intermediary'",
			domainerror.ErrInvalidPartyRole,
		)
	}

	party := entity.NewParty(
		input.Role,
		name,
		input.Contact,
		input.Address,
		input.OwnerName,
		input.OwnerPhone,
		input.AccountantName,
		input.AccountantPhone,
	)

	if err := uc.partyRepo.Create(ctx, party); err != nil {
		if errors.Is(err, domainerror.ErrDuplicatePartyName) {
			return nil, domainerror.NewPartyError(
				domainerror.ErrCodeDuplicatePartyName,
				fmt.Sprintf("a %s party named %q already exists", input.Role, name),
				domainerror.ErrDuplicatePartyName,
			)
		}
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	return &CreatePartyOutput{Party: party}, nil
}

// isValidPartyRole validates the party role.
func isValidPartyRole(role entity.PartyRole) bool {
	return role == entity.PartyRoleLender ||
		role == entity.PartyRoleBorrower ||
		role == entity.PartyRoleIntermediary
}
