package pot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/potshare-backend/internal/domain"
	"github.com/simaogato/potshare-backend/internal/usecase/ledger"
	"github.com/simaogato/potshare-backend/internal/usecase/settlement"
)

// CreatePotInput represents the input for creating a pot
type CreatePotInput struct {
	OwnerID           uuid.UUID
	Name              string
	DefaultCurrencyID int
	ParticipantIDs    []uuid.UUID // The owner is always added
}

// PotService handles pot membership and lifecycle operations
type PotService struct {
	PotRepo      domain.PotRepository
	ExpenseRepo  domain.ExpenseRepository
	CurrencyRepo domain.CurrencyRepository
}

// NewPotService creates a new PotService instance
func NewPotService(potRepo domain.PotRepository, expenseRepo domain.ExpenseRepository, currencyRepo domain.CurrencyRepository) *PotService {
	return &PotService{
		PotRepo:      potRepo,
		ExpenseRepo:  expenseRepo,
		CurrencyRepo: currencyRepo,
	}
}

// CreatePot creates a pot owned by the requester
// Logic:
//  1. Make sure the default currency exists
//  2. Build the participant list: owner first, duplicates dropped
//  3. Validate and save
func (s *PotService) CreatePot(ctx context.Context, input CreatePotInput) (*domain.Pot, error) {
	if _, err := s.CurrencyRepo.GetByID(ctx, input.DefaultCurrencyID); err != nil {
		return nil, err
	}

	participants := []uuid.UUID{input.OwnerID}
	seen := map[uuid.UUID]bool{input.OwnerID: true}
	for _, id := range input.ParticipantIDs {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		participants = append(participants, id)
	}

	pot := &domain.Pot{
		ID:                uuid.New(),
		Name:              input.Name,
		OwnerID:           input.OwnerID,
		DefaultCurrencyID: input.DefaultCurrencyID,
		Participants:      participants,
		CreatedAt:         time.Now(),
	}

	if err := pot.Validate(); err != nil {
		return nil, err
	}

	if err := s.PotRepo.Create(ctx, pot); err != nil {
		return nil, err
	}

	return pot, nil
}

// GetPot returns a pot the requester belongs to
func (s *PotService) GetPot(ctx context.Context, potID, requesterID uuid.UUID) (*domain.Pot, error) {
	pot, err := s.PotRepo.GetByID(ctx, potID)
	if err != nil {
		return nil, err
	}

	if !pot.IsMember(requesterID) {
		// Hide the pot from non-members
		return nil, fmt.Errorf("%w: pot %s", domain.ErrNotFound, potID)
	}

	return pot, nil
}

// ListPots returns every pot the user owns or takes part in
func (s *PotService) ListPots(ctx context.Context, userID uuid.UUID) ([]*domain.Pot, error) {
	return s.PotRepo.ListByMember(ctx, userID)
}

// AddParticipant adds userID to the pot. Only the owner may do this.
func (s *PotService) AddParticipant(ctx context.Context, potID, requesterID, userID uuid.UUID) error {
	pot, err := s.ownedPot(ctx, potID, requesterID)
	if err != nil {
		return err
	}

	if pot.Archived {
		return fmt.Errorf("%w: cannot change participants of pot %s", domain.ErrLocked, pot.ID)
	}

	if userID == uuid.Nil {
		return fmt.Errorf("%w: user id cannot be empty", domain.ErrInvalidInput)
	}

	if pot.HasParticipant(userID) {
		return fmt.Errorf("%w: user %s was previously added to pot %s", domain.ErrConflict, userID, pot.ID)
	}

	return s.PotRepo.AddParticipant(ctx, pot.ID, userID)
}

// AddParticipants adds users one at a time, waiting for each before the next,
// and stops at the first failure. Users added before the failure stay added.
func (s *PotService) AddParticipants(ctx context.Context, potID, requesterID uuid.UUID, userIDs []uuid.UUID) (added int, err error) {
	for _, userID := range userIDs {
		if err := s.AddParticipant(ctx, potID, requesterID, userID); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// RemoveParticipant removes userID from the pot. Only the owner may do this
// and the owner cannot be removed.
func (s *PotService) RemoveParticipant(ctx context.Context, potID, requesterID, userID uuid.UUID) error {
	pot, err := s.ownedPot(ctx, potID, requesterID)
	if err != nil {
		return err
	}

	if pot.Archived {
		return fmt.Errorf("%w: cannot change participants of pot %s", domain.ErrLocked, pot.ID)
	}

	if userID == pot.OwnerID {
		return fmt.Errorf("%w: the owner cannot leave pot %s", domain.ErrConflict, pot.ID)
	}

	if !pot.HasParticipant(userID) {
		return fmt.Errorf("%w: user %s was not part of pot %s", domain.ErrNotFound, userID, pot.ID)
	}

	return s.PotRepo.RemoveParticipant(ctx, pot.ID, userID)
}

// ArchivePot locks the pot against further changes once its balance is zero
func (s *PotService) ArchivePot(ctx context.Context, potID, requesterID uuid.UUID) error {
	pot, err := s.ownedPot(ctx, potID, requesterID)
	if err != nil {
		return err
	}

	if pot.Archived {
		return fmt.Errorf("%w: pot %s is already archived", domain.ErrLocked, pot.ID)
	}

	expenses, err := s.ExpenseRepo.ListByPot(ctx, pot.ID)
	if err != nil {
		return err
	}

	if !ledger.CanArchive(pot, expenses) {
		return fmt.Errorf("%w: pot %s has a balance of %s", domain.ErrConflict, pot.ID, ledger.NetBalance(expenses))
	}

	now := time.Now()
	return s.PotRepo.SetArchived(ctx, pot.ID, true, &now)
}

// UnarchivePot reopens an archived pot
func (s *PotService) UnarchivePot(ctx context.Context, potID, requesterID uuid.UUID) error {
	pot, err := s.ownedPot(ctx, potID, requesterID)
	if err != nil {
		return err
	}

	if !pot.Archived {
		return fmt.Errorf("%w: pot %s is not archived", domain.ErrConflict, pot.ID)
	}

	return s.PotRepo.SetArchived(ctx, pot.ID, false, nil)
}

// DeletePot removes the pot and its expenses
// Logic:
//  1. Only the owner may delete
//  2. The pot must satisfy CanDelete (no expenses or zero balance, not archived)
func (s *PotService) DeletePot(ctx context.Context, potID, requesterID uuid.UUID) error {
	pot, err := s.ownedPot(ctx, potID, requesterID)
	if err != nil {
		return err
	}

	if pot.Archived {
		return fmt.Errorf("%w: unarchive pot %s before deleting it", domain.ErrLocked, pot.ID)
	}

	expenses, err := s.ExpenseRepo.ListByPot(ctx, pot.ID)
	if err != nil {
		return err
	}

	if !ledger.CanDelete(pot, expenses) {
		return fmt.Errorf("%w: cannot delete pot %s because its balance is %s", domain.ErrConflict, pot.ID, ledger.NetBalance(expenses))
	}

	return s.PotRepo.Delete(ctx, pot.ID)
}

// GetPotSummary builds the pot view for the requester, with open settlement transfers
func (s *PotService) GetPotSummary(ctx context.Context, potID, requesterID uuid.UUID) (*ledger.PotSummary, error) {
	pot, err := s.GetPot(ctx, potID, requesterID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.ExpenseRepo.ListByPot(ctx, pot.ID)
	if err != nil {
		return nil, err
	}

	summary := ledger.Summarize(pot, expenses, requesterID)
	summary.Transfers = settlement.GenerateTransfers(expenses)
	summary.YouOwe = settlement.TotalOwedBy(summary.Transfers, requesterID)
	summary.OwedToYou = settlement.TotalOwedTo(summary.Transfers, requesterID)
	return &summary, nil
}

// ownedPot fetches the pot and checks that the requester owns it
func (s *PotService) ownedPot(ctx context.Context, potID, requesterID uuid.UUID) (*domain.Pot, error) {
	pot, err := s.PotRepo.GetByID(ctx, potID)
	if err != nil {
		return nil, err
	}

	if pot.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: the user does not own pot %s", domain.ErrForbidden, potID)
	}

	return pot, nil
}
