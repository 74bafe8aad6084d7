package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartialPayment represents one cash-received event against a transaction.
// Deleting the owning transaction deletes its payments.
type PartialPayment struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	PaymentDate   time.Time
	Amount        decimal.Decimal
	Notes         string
	CreatedAt     time.Time
}

// NewPartialPayment creates a new PartialPayment entity.
func NewPartialPayment(transactionID uuid.UUID, paymentDate time.Time, amount decimal.Decimal, notes string) *PartialPayment {
	return &PartialPayment{
		ID:            uuid.New(),
		TransactionID: transactionID,
		PaymentDate:   paymentDate,
		Amount:        amount,
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}
}
