package transaction

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/brokerledger/backend/internal/application/adapter"
)

// exportHeader is the column order of the CSV export.
var exportHeader = []string{
	"id",
	"lender",
	"borrower",
	"intermediary",
	"principal",
	"condition",
	"start_date",
	"end_date",
	"interest_rate_pct",
	"brokerage_rate_pct",
	"day_count_basis",
	"days",
	"months",
	"interest_amount",
	"brokerage_amount",
	"lender_return",
	"lendee_received",
	"net_interest",
	"remaining_balance",
	"received",
	"created_at",
}

// ExportTransactionsInput represents the input for a CSV export. The same
// filter options as the listing apply.
type ExportTransactionsInput struct {
	Filter adapter.TransactionFilter
}

// ExportTransactionsUseCase streams the matching transactions as CSV.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute writes the filtered transactions to w as CSV, header row first.
// Rates are exported as percentages to match what the user entered.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput, w io.Writer) error {
	rows, err := uc.transactionRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return fmt.Errorf("failed to list transactions for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, row := range rows {
		txn := row.Transaction
		record := []string{
			txn.ID.String(),
			row.LenderPartyName,
			row.BorrowerPartyName,
			row.IntermediaryPartyName,
			txn.Principal.StringFixed(2),
			txn.Condition,
			txn.StartDate.Format("2006-01-02"),
			txn.EndDate.Format("2006-01-02"),
			txn.InterestRate.Mul(oneHundred).String(),
			txn.BrokerageRate.Mul(oneHundred).String(),
			fmt.Sprintf("%d", txn.DayCountBasis),
			fmt.Sprintf("%d", txn.DayCount),
			txn.MonthCount.StringFixed(2),
			txn.InterestAmount.StringFixed(2),
			txn.BrokerageAmount.StringFixed(2),
			txn.LenderReturnAmount.StringFixed(2),
			txn.LendeeReceivedAmount.StringFixed(2),
			txn.NetInterestAmount.StringFixed(2),
			txn.RemainingBalance.StringFixed(2),
			fmt.Sprintf("%t", txn.Received),
			txn.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}
