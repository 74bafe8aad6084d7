package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for partial-payment persistence.
// The Record and Reverse operations pair the balance update with the payment
// row change inside a single database transaction so a failure partway
// through cannot leave the remaining balance inconsistent with the payment
// list.
type PaymentRepository interface {
	// Record inserts the payment and updates the owning transaction's
	// remaining balance atomically. When settled is true the received flag
	// is set; otherwise the stored flag is left untouched so a manual
	// override survives partial payments.
	Record(ctx context.Context, payment *entity.PartialPayment, newRemaining decimal.Decimal, settled bool) error

	// Reverse deletes the payment and restores the owning transaction's
	// remaining balance atomically, clearing the received flag.
	Reverse(ctx context.Context, paymentID uuid.UUID, newRemaining decimal.Decimal) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PartialPayment, error)

	// FindByTransaction retrieves a transaction's payments ordered by payment
	// date descending, latest insertion first among same-date payments.
	FindByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*entity.PartialPayment, error)
}

// SnapshotRepository persists advisory pending-balance calculations.
type SnapshotRepository interface {
	// Create stores a balance snapshot audit row.
	Create(ctx context.Context, snapshot *entity.BalanceSnapshot) error

	// FindByTransaction retrieves a transaction's snapshots, newest first.
	FindByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*entity.BalanceSnapshot, error)
}
