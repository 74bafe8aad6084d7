package dto

import (
	"time"

	"github.com/brokerledger/backend/internal/domain/entity"
)

// CreatePartyRequest represents the request body for party creation.
type CreatePartyRequest struct {
	Role            string `json:"role" binding:"required,oneof=lender borrower intermediary"`
	Name            string `json:"name" binding:"required,min=1,max=255"`
	Contact         string `json:"contact,omitempty" binding:"omitempty,max=255"`
	Address         string `json:"address,omitempty" binding:"omitempty,max=1000"`
	OwnerName       string `json:"owner_name,omitempty" binding:"omitempty,max=255"`
	OwnerPhone      string `json:"owner_phone,omitempty" binding:"omitempty,max=32"`
	AccountantName  string `json:"accountant_name,omitempty" binding:"omitempty,max=255"`
	AccountantPhone string `json:"accountant_phone,omitempty" binding:"omitempty,max=32"`
}

// PartyResponse represents a single party in API responses.
type PartyResponse struct {
	ID              string    `json:"id"`
	Role            string    `json:"role"`
	Name            string    `json:"name"`
	Contact         string    `json:"contact,omitempty"`
	Address         string    `json:"address,omitempty"`
	OwnerName       string    `json:"owner_name,omitempty"`
	OwnerPhone      string    `json:"owner_phone,omitempty"`
	AccountantName  string    `json:"accountant_name,omitempty"`
	AccountantPhone string    `json:"accountant_phone,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// PartyListResponse represents the response for listing parties.
type PartyListResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain Party entity to a PartyResponse DTO.
func ToPartyResponse(party *entity.Party) PartyResponse {
	return PartyResponse{
		ID:              party.ID.String(),
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

// ToPartyListResponse converts a party slice to a PartyListResponse DTO.
func ToPartyListResponse(parties []*entity.Party) PartyListResponse {
	response := PartyListResponse{Parties: make([]PartyResponse, len(parties))}
	for i, p := range parties {
		response.Parties[i] = ToPartyResponse(p)
	}
	return response
}
