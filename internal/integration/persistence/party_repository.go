// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
	"github.com/brokerledger/backend/internal/integration/persistence/model"
)

// partyRepository implements the adapter.PartyRepository interface.
type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new party repository instance.
func NewPartyRepository(db *gorm.DB) adapter.PartyRepository {
	return &partyRepository{
		db: db,
	}
}

// Create creates a new party in the database.
func (r *partyRepository) Create(ctx context.Context, party *entity.Party) error {
	partyModel := model.PartyFromEntity(party)
	result := r.db.WithContext(ctx).Create(partyModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrDuplicatePartyName
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a party by its ID.
func (r *partyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	var partyModel model.PartyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&partyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPartyNotFound
		}
		return nil, result.Error
	}
	return partyModel.ToEntity(), nil
}

// FindByRole retrieves all parties for a role, ordered by name.
func (r *partyRepository) FindByRole(ctx context.Context, role entity.PartyRole) ([]*entity.Party, error) {
	var partyModels []model.PartyModel
	result := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("name ASC").
		Find(&partyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	parties := make([]*entity.Party, len(partyModels))
	for i, pm := range partyModels {
		parties[i] = pm.ToEntity()
	}
	return parties, nil
}

// FindAll retrieves every party, ordered by role then name.
func (r *partyRepository) FindAll(ctx context.Context) ([]*entity.Party, error) {
	var partyModels []model.PartyModel
	result := r.db.WithContext(ctx).
		Order("role ASC, name ASC").
		Find(&partyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	parties := make([]*entity.Party, len(partyModels))
	for i, pm := range partyModels {
		parties[i] = pm.ToEntity()
	}
	return parties, nil
}

// CountTransactionReferences counts transactions referencing the party in any
// role position.
func (r *partyRepository) CountTransactionReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("lender_party_id = ? OR borrower_party_id = ? OR intermediary_party_id = ?", id, id, id).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete removes a party from the database.
func (r *partyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PartyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// isUniqueViolation detects a unique-constraint failure on either supported
// driver. Postgres reports SQLSTATE 23505; the SQLite driver only exposes the
// message text.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value")
}
