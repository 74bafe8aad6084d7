package steps

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/domain/entity"
	"github.com/brokerledger/backend/internal/integration/persistence/model"
)

// Party seeds go straight to the database; the ledger steps below drive the
// API so the derived figures come out of the same code path the UI uses.

func (t *testContext) aLenderNamedExists(name string) error {
	id, err := t.seedParty(entity.PartyRoleLender, name)
	if err != nil {
		return err
	}
	t.lenderID = id
	return nil
}

func (t *testContext) aBorrowerNamedExists(name string) error {
	id, err := t.seedParty(entity.PartyRoleBorrower, name)
	if err != nil {
		return err
	}
	t.borrowerID = id
	return nil
}

func (t *testContext) anIntermediaryNamedExists(name string) error {
	id, err := t.seedParty(entity.PartyRoleIntermediary, name)
	if err != nil {
		return err
	}
	t.intermediaryID = id
	return nil
}

func (t *testContext) seedParty(role entity.PartyRole, name string) (uuid.UUID, error) {
	party := entity.NewParty(role, name, "", "", "", "", "", "")
	if err := t.db.DbConn.Create(model.PartyFromEntity(party)).Error; err != nil {
		return party.ID, fmt.Errorf("failed to seed %s party: %w", role, err)
	}
	return party.ID, nil
}

func (t *testContext) aTransactionExistsForPrincipal(principal, startDate, endDate string) error {
	body := fmt.Sprintf(`{
		"lender_party_id": "%s",
		"borrower_party_id": "%s",
		"principal": "%s",
		"start_date": "%s",
		"end_date": "%s",
		"interest_rate_pct": "12",
		"brokerage_rate_pct": "1"
	}`, t.lenderID, t.borrowerID, principal, startDate, endDate)

	if err := t.executeRequest("POST", "/api/v1/transactions", []byte(body)); err != nil {
		return err
	}
	if t.response.status != 201 {
		return fmt.Errorf("failed to seed transaction: status %d, body %v", t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) aPaymentWasRecordedOn(amount, paymentDate string) error {
	body := fmt.Sprintf(`{"payment_date": "%s", "amount": "%s"}`, paymentDate, amount)
	path := fmt.Sprintf("/api/v1/transactions/%s/payments", t.lastTransactionID)

	if err := t.executeRequest("POST", path, []byte(body)); err != nil {
		return err
	}
	if t.response.status != 201 {
		return fmt.Errorf("failed to seed payment: status %d, body %v", t.response.status, t.response.body)
	}
	return nil
}
