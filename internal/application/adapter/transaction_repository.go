package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	LenderPartyName       string
	BorrowerPartyName     string
	IntermediaryPartyName string
	Received              *bool
	// DateRangeStart/DateRangeEnd match transactions whose start or end date
	// falls inside the range.
	DateRangeStart *time.Time
	DateRangeEnd   *time.Time
	// EndMonth/EndYear filter on the end date's calendar month and/or year.
	EndMonth *int
	EndYear  *int
	// EndingOn matches transactions whose end date equals the given day.
	EndingOn  *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// TransactionTotals represents aggregated figures across a transaction set.
type TransactionTotals struct {
	PrincipalTotal   decimal.Decimal
	InterestTotal    decimal.Decimal
	BrokerageTotal   decimal.Decimal
	NetInterestTotal decimal.Decimal
	ReceivedCount    int64
	PendingCount     int64
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithParties retrieves a transaction with its party names resolved.
	FindByIDWithParties(ctx context.Context, id uuid.UUID) (*entity.TransactionWithParties, error)

	// FindByFilter retrieves transactions matching the filter with party
	// names resolved, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithParties, error)

	// GetTotals aggregates totals for transactions matching the filter.
	GetTotals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error)

	// Update persists changed transaction fields.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// UpdateReceived sets the received flag without touching the balance.
	UpdateReceived(ctx context.Context, id uuid.UUID, received bool) error

	// Delete removes a transaction together with its payments and balance
	// snapshots in one unit of work.
	Delete(ctx context.Context, id uuid.UUID) error
}
