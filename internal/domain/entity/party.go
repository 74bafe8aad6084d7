// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PartyRole identifies which side of a brokered loan a party can take.
type PartyRole string

const (
	// PartyRoleLender is the party whose funds are loaned out.
	PartyRoleLender PartyRole = "lender"
	// PartyRoleBorrower is the party receiving and repaying the loan.
	PartyRoleBorrower PartyRole = "borrower"
	// PartyRoleIntermediary is the optional secondary party in some
	// transaction structures.
	PartyRoleIntermediary PartyRole = "intermediary"
)

// Party represents one entry in the party directory. Party names are unique
// within a role.
type Party struct {
	ID              uuid.UUID
	Role            PartyRole
	Name            string
	Contact         string
	Address         string
	OwnerName       string
	OwnerPhone      string
	AccountantName  string
	AccountantPhone string
	CreatedAt       time.Time
}

// NewParty creates a new Party entity.
func NewParty(role PartyRole, name, contact, address, ownerName, ownerPhone, accountantName, accountantPhone string) *Party {
	return &Party{
		ID:              uuid.New(),
		Role:            role,
		Name:            name,
		Contact:         contact,
		Address:         address,
		OwnerName:       ownerName,
		OwnerPhone:      ownerPhone,
		AccountantName:  accountantName,
		AccountantPhone: accountantPhone,
		CreatedAt:       time.Now().UTC(),
	}
}
