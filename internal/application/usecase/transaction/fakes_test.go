package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

type fakePartyRepo struct {
	parties map[uuid.UUID]*entity.Party
}

func newFakePartyRepo(parties ...*entity.Party) *fakePartyRepo {
	repo := &fakePartyRepo{parties: make(map[uuid.UUID]*entity.Party)}
	for _, p := range parties {
		repo.parties[p.ID] = p
	}
	return repo
}

func (f *fakePartyRepo) Create(_ context.Context, party *entity.Party) error {
	for _, existing := range f.parties {
		if existing.Name == party.Name && existing.Role == party.Role {
			return domainerror.ErrDuplicatePartyName
		}
	}
	f.parties[party.ID] = party
	return nil
}

func (f *fakePartyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Party, error) {
	p, ok := f.parties[id]
	if !ok {
		return nil, domainerror.ErrPartyNotFound
	}
	return p, nil
}

func (f *fakePartyRepo) FindByRole(_ context.Context, role entity.PartyRole) ([]*entity.Party, error) {
	var out []*entity.Party
	for _, p := range f.parties {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePartyRepo) FindAll(_ context.Context) ([]*entity.Party, error) {
	var out []*entity.Party
	for _, p := range f.parties {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePartyRepo) CountTransactionReferences(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakePartyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.parties, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	updateCalls  int
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
	var out []*entity.TransactionWithParties
	for _, txn := range f.transactions {
		copied := *txn
		out = append(out, &entity.TransactionWithParties{Transaction: &copied})
	}
	return out, nil
}

func (f *fakeTransactionRepo) GetTotals(_ context.Context, _ adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	totals := &adapter.TransactionTotals{
		PrincipalTotal:   decimal.Zero,
		InterestTotal:    decimal.Zero,
		BrokerageTotal:   decimal.Zero,
		NetInterestTotal: decimal.Zero,
	}
	for _, txn := range f.transactions {
		totals.PrincipalTotal = totals.PrincipalTotal.Add(txn.Principal)
		totals.InterestTotal = totals.InterestTotal.Add(txn.InterestAmount)
		totals.BrokerageTotal = totals.BrokerageTotal.Add(txn.BrokerageAmount)
		totals.NetInterestTotal = totals.NetInterestTotal.Add(txn.NetInterestAmount)
		if txn.Received {
			totals.ReceivedCount++
		} else {
			totals.PendingCount++
		}
	}
	return totals, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, txn *entity.Transaction) error {
	if _, ok := f.transactions[txn.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	copied := *txn
	f.transactions[txn.ID] = &copied
	f.updateCalls++
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
	if _, ok := f.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(f.transactions, id)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func lenderAndBorrower() (*entity.Party, *entity.Party) {
	lender := entity.NewParty(entity.PartyRoleLender, "Asha Capital", "", "", "", "", "", "")
	borrower := entity.NewParty(entity.PartyRoleBorrower, "Mehta Traders", "", "", "", "", "", "")
	return lender, borrower
}
