// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// PartyRepository defines the interface for party-directory persistence.
type PartyRepository interface {
	// Create adds a new party. Returns domainerror.ErrDuplicatePartyName when
	// a party with the same name already exists for the role.
	Create(ctx context.Context, party *entity.Party) error

	// FindByID retrieves a party by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)

	// FindByRole retrieves all parties for a role, ordered by name.
	FindByRole(ctx context.Context, role entity.PartyRole) ([]*entity.Party, error)

	// FindAll retrieves every party, ordered by role then name.
	FindAll(ctx context.Context) ([]*entity.Party, error)

	// CountTransactionReferences counts transactions that reference the party
	// in any role position.
	CountTransactionReferences(ctx context.Context, id uuid.UUID) (int64, error)

	// Delete removes a party from the directory.
	Delete(ctx context.Context, id uuid.UUID) error
}
