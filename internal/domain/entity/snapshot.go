package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceSnapshot is a point-in-time record of the pending interest and
// brokerage owed on a transaction's remaining balance. Snapshots are advisory
// audit rows; the authoritative figures are always recomputed on demand.
type BalanceSnapshot struct {
	ID                uuid.UUID
	TransactionID     uuid.UUID
	CalculationDate   time.Time
	RemainingBalance  decimal.Decimal
	InterestAmount    decimal.Decimal
	BrokerageAmount   decimal.Decimal
	DaysSinceMovement int
	CreatedAt         time.Time
}
