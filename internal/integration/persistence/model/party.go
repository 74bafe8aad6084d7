// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// PartyModel represents the parties table in the database. Names are unique
// within a role.
type PartyModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role            string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_parties_role_name"`
	Name            string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_parties_role_name"`
	Contact         string    `gorm:"type:varchar(255)"`
	Address         string    `gorm:"type:text"`
	OwnerName       string    `gorm:"type:varchar(255)"`
	OwnerPhone      string    `gorm:"type:varchar(32)"`
	AccountantName  string    `gorm:"type:varchar(255)"`
	AccountantPhone string    `gorm:"type:varchar(32)"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the PartyModel.
func (PartyModel) TableName() string {
	return "parties"
}

// ToEntity converts a PartyModel to a domain Party entity.
func (m *PartyModel) ToEntity() *entity.Party {
	return &entity.Party{
		ID:              m.ID,
		Role:            entity.PartyRole(m.Role),
		Name:            m.Name,
		Contact:         m.Contact,
		Address:         m.Address,
		OwnerName:       m.OwnerName,
		OwnerPhone:      m.OwnerPhone,
		AccountantName:  m.AccountantName,
		AccountantPhone: m.AccountantPhone,
		CreatedAt:       m.CreatedAt,
	}
}

// PartyFromEntity creates a PartyModel from a domain Party entity.
func PartyFromEntity(party *entity.Party) *PartyModel {
	return &PartyModel{
		ID:              party.ID,
		Role:            string(party.Role),
		Name:            party.Name,
		Contact:         party.Contact,
		Address:         party.Address,
		OwnerName:       party.OwnerName,
		OwnerPhone:      party.OwnerPhone,
		AccountantName:  party.AccountantName,
		AccountantPhone: party.AccountantPhone,
		CreatedAt:       party.CreatedAt,
	}
}
