package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Pot represents a shared budget that expenses are recorded against
type Pot struct {
	ID                uuid.UUID
	Name              string
	OwnerID           uuid.UUID
	DefaultCurrencyID int
	Participants      []uuid.UUID // Always contains the owner
	Archived          bool
	ArchivedAt        *time.Time // NULL unless archived
	CreatedAt         time.Time
}

// Validate ensures the pot adheres to domain rules
func (p *Pot) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: pot name cannot be empty", ErrInvalidInput)
	}

	if p.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: pot must have an owner", ErrInvalidInput)
	}

	if p.DefaultCurrencyID <= 0 {
		return fmt.Errorf("%w: pot must have a default currency", ErrInvalidInput)
	}

	if !p.HasParticipant(p.OwnerID) {
		return fmt.Errorf("%w: pot owner must be a participant", ErrInvalidInput)
	}

	return nil
}

// HasParticipant reports whether the user is in the participant list
func (p *Pot) HasParticipant(userID uuid.UUID) bool {
	for _, id := range p.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// IsMember reports whether the user may see the pot (owner or participant)
func (p *Pot) IsMember(userID uuid.UUID) bool {
	return p.OwnerID == userID || p.HasParticipant(userID)
}

// Currency represents a currency a pot or expense can be denominated in
type Currency struct {
	ID     int
	Name   string
	Symbol string
}

// SettlementTransfer is an open debt: From owes To the given amount
type SettlementTransfer struct {
	From   uuid.UUID
	To     uuid.UUID
	Amount Money
}
