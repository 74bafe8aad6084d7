package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
	"github.com/brokerledger/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Record inserts the payment and updates the owning transaction's remaining
// balance in one database transaction. The received flag is only written on
// settlement; a partial payment leaves a manually set flag in place.
func (r *paymentRepository) Record(ctx context.Context, payment *entity.PartialPayment, newRemaining decimal.Decimal, settled bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.PartialPaymentFromEntity(payment)).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"remaining_balance": newRemaining,
		}
		if settled {
			updates["received"] = true
		}
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ?", payment.TransactionID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return nil
	})
}

// Reverse deletes the payment and restores the owning transaction's remaining
// balance in one database transaction. The received flag is always cleared.
func (r *paymentRepository) Reverse(ctx context.Context, paymentID uuid.UUID, newRemaining decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var paymentModel model.PartialPaymentModel
		if err := tx.Where("id = ?", paymentID).First(&paymentModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrPaymentNotFound
			}
			return err
		}

		result := tx.Model(&model.TransactionModel{}).
			Where("id = ?", paymentModel.TransactionID).
			Updates(map[string]interface{}{
				"remaining_balance": newRemaining,
				"received":          false,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}

		return tx.Delete(&model.PartialPaymentModel{}, "id = ?", paymentID).Error
	})
}

// FindByID retrieves a payment by its ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PartialPayment, error) {
	var paymentModel model.PartialPaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByTransaction retrieves a transaction's payments, latest payment date
// first with insertion recency breaking ties.
func (r *paymentRepository) FindByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*entity.PartialPayment, error) {
	var paymentModels []model.PartialPaymentModel
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("payment_date DESC, created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.PartialPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}
