package party

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

type fakePartyRepo struct {
	parties    map[uuid.UUID]*entity.Party
	references map[uuid.UUID]int64
}

func newFakePartyRepo() *fakePartyRepo {
	return &fakePartyRepo{
		parties:    make(map[uuid.UUID]*entity.Party),
		references: make(map[uuid.UUID]int64),
	}
}

func (r *fakePartyRepo) Create(_ context.Context, party *entity.Party) error {
	for _, existing := range r.parties {
		if existing.Role == party.Role && existing.Name == party.Name {
			return domainerror.ErrDuplicatePartyName
		}
	}
	r.parties[party.ID] = party
	return nil
}

func (r *fakePartyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Party, error) {
	party, ok := r.parties[id]
	if !ok {
		return nil, domainerror.ErrPartyNotFound
	}
	return party, nil
}

func (r *fakePartyRepo) FindByRole(_ context.Context, role entity.PartyRole) ([]*entity.Party, error) {
	var out []*entity.Party
	for _, p := range r.parties {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePartyRepo) FindAll(_ context.Context) ([]*entity.Party, error) {
	out := make([]*entity.Party, 0, len(r.parties))
	for _, p := range r.parties {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartyRepo) CountTransactionReferences(_ context.Context, id uuid.UUID) (int64, error) {
	return r.references[id], nil
}

func (r *fakePartyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.parties, id)
	return nil
}

func TestCreateParty(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a party and trims the name", func(t *testing.T) {
		repo := newFakePartyRepo()
		uc := NewCreatePartyUseCase(repo)

		out, err := uc.Execute(ctx, CreatePartyInput{
			Role: entity.PartyRoleLender,
			Name: "  Asha Capital  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Party.Name != "Asha Capital" {
			t.Errorf("expected trimmed name, got %q", out.Party.Name)
		}
		if len(repo.parties) != 1 {
			t.Errorf("expected 1 stored party, got %d", len(repo.parties))
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		uc := NewCreatePartyUseCase(newFakePartyRepo())

		_, err := uc.Execute(ctx, CreatePartyInput{Role: entity.PartyRoleLender, Name: "   "})
		if !errors.Is(err, domainerror.ErrPartyNameRequired) {
			t.Errorf("expected ErrPartyNameRequired, got %v", err)
		}
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		uc := NewCreatePartyUseCase(newFakePartyRepo())

		_, err := uc.Execute(ctx, CreatePartyInput{Role: "guarantor", Name: "Nobody"})
		if !errors.Is(err, domainerror.ErrInvalidPartyRole) {
			t.Errorf("expected ErrInvalidPartyRole, got %v", err)
		}
	})

	t.Run("rejects a duplicate name within the role", func(t *testing.T) {
		repo := newFakePartyRepo()
		uc := NewCreatePartyUseCase(repo)

		if _, err := uc.Execute(ctx, CreatePartyInput{Role: entity.PartyRoleLender, Name: "Asha Capital"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(ctx, CreatePartyInput{Role: entity.PartyRoleLender, Name: "Asha Capital"})
		if !errors.Is(err, domainerror.ErrDuplicatePartyName) {
			t.Errorf("expected ErrDuplicatePartyName, got %v", err)
		}
	})

	t.Run("allows the same name under another role", func(t *testing.T) {
		repo := newFakePartyRepo()
		uc := NewCreatePartyUseCase(repo)

		if _, err := uc.Execute(ctx, CreatePartyInput{Role: entity.PartyRoleLender, Name: "Mehta Traders"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(ctx, CreatePartyInput{Role: entity.PartyRoleBorrower, Name: "Mehta Traders"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestListParties(t *testing.T) {
	ctx := context.Background()
	repo := newFakePartyRepo()
	uc := NewListPartiesUseCase(repo)

	seed := NewCreatePartyUseCase(repo)
	for _, p := range []struct {
		role entity.PartyRole
		name string
	}{
		{entity.PartyRoleLender, "Asha Capital"},
		{entity.PartyRoleLender, "Patel Finance"},
		{entity.PartyRoleBorrower, "Mehta Traders"},
	} {
		if _, err := seed.Execute(ctx, CreatePartyInput{Role: p.role, Name: p.name}); err != nil {
			t.Fatalf("failed to seed party: %v", err)
		}
	}

	t.Run("filters by role", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListPartiesInput{Role: entity.PartyRoleLender})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Parties) != 2 {
			t.Errorf("expected 2 lenders, got %d", len(out.Parties))
		}
	})

	t.Run("empty role lists everything", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListPartiesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Parties) != 3 {
			t.Errorf("expected 3 parties, got %d", len(out.Parties))
		}
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListPartiesInput{Role: "guarantor"})
		if !errors.Is(err, domainerror.ErrInvalidPartyRole) {
			t.Errorf("expected ErrInvalidPartyRole, got %v", err)
		}
	})
}

func TestDeleteParty(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unreferenced party", func(t *testing.T) {
		repo := newFakePartyRepo()
		out, err := NewCreatePartyUseCase(repo).Execute(ctx, CreatePartyInput{Role: entity.PartyRoleLender, Name: "Asha Capital"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := NewDeletePartyUseCase(repo).Execute(ctx, DeletePartyInput{PartyID: out.Party.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.parties) != 0 {
			t.Errorf("expected party removed, got %d remaining", len(repo.parties))
		}
	})

	t.Run("refuses while transactions reference the party", func(t *testing.T) {
		repo := newFakePartyRepo()
		out, err := NewCreatePartyUseCase(repo).Execute(ctx, CreatePartyInput{Role: entity.PartyRoleLender, Name: "Asha Capital"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.references[out.Party.ID] = 2

		err = NewDeletePartyUseCase(repo).Execute(ctx, DeletePartyInput{PartyID: out.Party.ID})
		if !errors.Is(err, domainerror.ErrPartyInUse) {
			t.Errorf("expected ErrPartyInUse, got %v", err)
		}
		if len(repo.parties) != 1 {
			t.Errorf("expected party kept, got %d", len(repo.parties))
		}
	})

	t.Run("unknown party", func(t *testing.T) {
		err := NewDeletePartyUseCase(newFakePartyRepo()).Execute(ctx, DeletePartyInput{PartyID: uuid.New()})
		if !errors.Is(err, domainerror.ErrPartyNotFound) {
			t.Errorf("expected ErrPartyNotFound, got %v", err)
		}
	})
}
