package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
	"github.com/brokerledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDWithParties retrieves a transaction with its party names resolved.
func (r *transactionRepository) FindByIDWithParties(ctx context.Context, id uuid.UUID) (*entity.TransactionWithParties, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("LenderParty").
		Preload("BorrowerParty").
		Preload("IntermediaryParty").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithParties(), nil
}

// FindByFilter retrieves transactions based on filter criteria, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithParties, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)

	var transactionModels []model.TransactionModel
	result := query.
		Preload("LenderParty").
		Preload("BorrowerParty").
		Preload("IntermediaryParty").
		Order("transactions.start_date DESC, transactions.created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithParties, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithParties()
	}
	return transactions, nil
}

// GetTotals aggregates totals for transactions matching the filter.
func (r *transactionRepository) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)

	var row struct {
		PrincipalTotal   decimal.Decimal
		InterestTotal    decimal.Decimal
		BrokerageTotal   decimal.Decimal
		NetInterestTotal decimal.Decimal
		ReceivedCount    int64
		PendingCount     int64
	}
	result := query.Select(
		"COALESCE(SUM(transactions.principal), 0) AS principal_total, " +
			"COALESCE(SUM(transactions.interest_amount), 0) AS interest_total, " +
			"COALESCE(SUM(transactions.brokerage_amount), 0) AS brokerage_total, " +
			"COALESCE(SUM(transactions.net_interest_amount), 0) AS net_interest_total, " +
			"COALESCE(SUM(CASE WHEN transactions.received THEN 1 ELSE 0 END), 0) AS received_count, " +
			"COALESCE(SUM(CASE WHEN transactions.received THEN 0 ELSE 1 END), 0) AS pending_count").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.TransactionTotals{
		PrincipalTotal:   row.PrincipalTotal,
		InterestTotal:    row.InterestTotal,
		BrokerageTotal:   row.BrokerageTotal,
		NetInterestTotal: row.NetInterestTotal,
		ReceivedCount:    row.ReceivedCount,
		PendingCount:     row.PendingCount,
	}, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateReceived sets the received flag without touching the balance.
func (r *transactionRepository) UpdateReceived(ctx context.Context, id uuid.UUID, received bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Update("received", received)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction together with its payments and snapshots.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&model.PartialPaymentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("transaction_id = ?", id).Delete(&model.BalanceSnapshotModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TransactionModel{}, "id = ?", id).Error
	})
}

// applyFilter translates the adapter filter into query conditions. Party-name
// filters join the parties table once per role position.
func (r *transactionRepository) applyFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	if filter.LenderPartyName != "" {
		query = query.
			Joins("JOIN parties AS lender_parties ON lender_parties.id = transactions.lender_party_id").
			Where("LOWER(lender_parties.name) LIKE ?", "%"+strings.ToLower(filter.LenderPartyName)+"%")
	}
	if filter.BorrowerPartyName != "" {
		query = query.
			Joins("JOIN parties AS borrower_parties ON borrower_parties.id = transactions.borrower_party_id").
			Where("LOWER(borrower_parties.name) LIKE ?", "%"+strings.ToLower(filter.BorrowerPartyName)+"%")
	}
	if filter.IntermediaryPartyName != "" {
		query = query.
			Joins("JOIN parties AS intermediary_parties ON intermediary_parties.id = transactions.intermediary_party_id").
			Where("LOWER(intermediary_parties.name) LIKE ?", "%"+strings.ToLower(filter.IntermediaryPartyName)+"%")
	}
	if filter.Received != nil {
		query = query.Where("transactions.received = ?", *filter.Received)
	}
	if filter.DateRangeStart != nil && filter.DateRangeEnd != nil {
		query = query.Where(
			"(transactions.start_date BETWEEN ? AND ?) OR (transactions.end_date BETWEEN ? AND ?)",
			*filter.DateRangeStart, *filter.DateRangeEnd, *filter.DateRangeStart, *filter.DateRangeEnd)
	} else if filter.DateRangeStart != nil {
		query = query.Where("transactions.end_date >= ?", *filter.DateRangeStart)
	} else if filter.DateRangeEnd != nil {
		query = query.Where("transactions.start_date <= ?", *filter.DateRangeEnd)
	}
	if filter.EndMonth != nil {
		query = query.Where(r.monthExpr("transactions.end_date")+" = ?", fmt.Sprintf("%02d", *filter.EndMonth))
	}
	if filter.EndYear != nil {
		query = query.Where(r.yearExpr("transactions.end_date")+" = ?", fmt.Sprintf("%04d", *filter.EndYear))
	}
	if filter.EndingOn != nil {
		query = query.Where("transactions.end_date = ?", *filter.EndingOn)
	}
	if filter.MinAmount != nil {
		query = query.Where("transactions.principal >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("transactions.principal <= ?", *filter.MaxAmount)
	}
	return query
}

// monthExpr returns the dialect-specific expression extracting a zero-padded
// month from a date column.
func (r *transactionRepository) monthExpr(column string) string {
	if r.db.Dialector.Name() == "postgres" {
		return "TO_CHAR(" + column + ", 'MM')"
	}
	return "strftime('%m', " + column + ")"
}

// yearExpr returns the dialect-specific expression extracting a four-digit
// year from a date column.
func (r *transactionRepository) yearExpr(column string) string {
	if r.db.Dialector.Name() == "postgres" {
		return "TO_CHAR(" + column + ", 'YYYY')"
	}
	return "strftime('%Y', " + column + ")"
}
