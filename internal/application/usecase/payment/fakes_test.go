package payment

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo(txns ...*entity.Transaction) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
	for _, t := range txns {
		repo.transactions[t.ID] = t
	}
	return repo
}

func (f *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	f.transactions[txn.ID] = txn
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, ok := f.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *txn
	return &copied, nil
}

func (f *fakeTransactionRepo) FindByIDWithParties(ctx context.Context, id uuid.UUID) (*entity.TransactionWithParties, error) {
	txn, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.TransactionWithParties{Transaction: txn}, nil
}

func (f *fakeTransactionRepo) FindByFilter(_ context.Context, _ adapter.TransactionFilter) ([]*entity.TransactionWithParties, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) GetTotals(_ context.Context, _ adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	return &adapter.TransactionTotals{}, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, txn *entity.Transaction) error {
	copied := *txn
	f.transactions[txn.ID] = &copied
	return nil
}

func (f *fakeTransactionRepo) UpdateReceived(_ context.Context, id uuid.UUID, received bool) error {
	txn, ok := f.transactions[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	txn.Received = received
	return nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.transactions, id)
	return nil
}

// fakePaymentRepo pairs the balance mutation with the payment row change the
// way the real repository does inside a database transaction.
type fakePaymentRepo struct {
	transactions *fakeTransactionRepo
	payments     map[uuid.UUID]*entity.PartialPayment
}

func newFakePaymentRepo(transactions *fakeTransactionRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		transactions: transactions,
		payments:     make(map[uuid.UUID]*entity.PartialPayment),
	}
}

func (f *fakePaymentRepo) Record(_ context.Context, payment *entity.PartialPayment, newRemaining decimal.Decimal, settled bool) error {
	txn, ok := f.transactions.transactions[payment.TransactionID]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	txn.RemainingBalance = newRemaining
	if settled {
		txn.Received = true
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) Reverse(_ context.Context, paymentID uuid.UUID, newRemaining decimal.Decimal) error {
	pmt, ok := f.payments[paymentID]
	if !ok {
		return domainerror.ErrPaymentNotFound
	}
	txn, ok := f.transactions.transactions[pmt.TransactionID]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	txn.RemainingBalance = newRemaining
	txn.Received = false
	delete(f.payments, paymentID)
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PartialPayment, error) {
	pmt, ok := f.payments[id]
	if !ok {
		return nil, domainerror.ErrPaymentNotFound
	}
	return pmt, nil
}

func (f *fakePaymentRepo) FindByTransaction(_ context.Context, transactionID uuid.UUID) ([]*entity.PartialPayment, error) {
	var out []*entity.PartialPayment
	for _, pmt := range f.payments {
		if pmt.TransactionID == transactionID {
			out = append(out, pmt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PaymentDate.Equal(out[j].PaymentDate) {
			return out[i].PaymentDate.After(out[j].PaymentDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type fakeSnapshotRepo struct {
	snapshots []*entity.BalanceSnapshot
}

func (f *fakeSnapshotRepo) Create(_ context.Context, snapshot *entity.BalanceSnapshot) error {
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func (f *fakeSnapshotRepo) FindByTransaction(_ context.Context, transactionID uuid.UUID) ([]*entity.BalanceSnapshot, error) {
	var out []*entity.BalanceSnapshot
	for _, s := range f.snapshots {
		if s.TransactionID == transactionID {
			out = append(out, s)
		}
	}
	return out, nil
}

func anyTransactionID(repo *fakeTransactionRepo) uuid.UUID {
	for id := range repo.transactions {
		return id
	}
	return uuid.Nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedTransaction builds a stored transaction with the mutable ledger state
// already initialized.
func seedTransaction(principal int64) *entity.Transaction {
	p := decimal.NewFromInt(principal)
	now := time.Now().UTC()
	return &entity.Transaction{
		ID:               uuid.New(),
		LenderPartyID:    uuid.New(),
		BorrowerPartyID:  uuid.New(),
		Principal:        p,
		StartDate:        date(2024, time.January, 1),
		EndDate:          date(2024, time.June, 30),
		InterestRate:     decimal.RequireFromString("0.12"),
		BrokerageRate:    decimal.RequireFromString("0.01"),
		DayCountBasis:    365,
		RemainingBalance: p,
		Received:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
