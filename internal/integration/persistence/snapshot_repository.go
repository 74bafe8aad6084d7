package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	"github.com/brokerledger/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the adapter.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Create stores a balance snapshot audit row.
func (r *snapshotRepository) Create(ctx context.Context, snapshot *entity.BalanceSnapshot) error {
	result := r.db.WithContext(ctx).Create(model.BalanceSnapshotFromEntity(snapshot))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByTransaction retrieves a transaction's snapshots, newest first.
func (r *snapshotRepository) FindByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*entity.BalanceSnapshot, error) {
	var snapshotModels []model.BalanceSnapshotModel
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at DESC").
		Find(&snapshotModels)
	if result.Error != nil {
		return nil, result.Error
	}

	snapshots := make([]*entity.BalanceSnapshot, len(snapshotModels))
	for i, sm := range snapshotModels {
		snapshots[i] = sm.ToEntity()
	}
	return snapshots, nil
}
