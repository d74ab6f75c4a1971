package template

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/potshare-backend/internal/domain"
	"github.com/simaogato/potshare-backend/internal/usecase/pot"
)

// CreateTemplateInput represents the input for creating a pot template
type CreateTemplateInput struct {
	OwnerID           uuid.UUID
	Name              string
	DefaultCurrencyID int
	Occurrence        domain.Occurrence
	ParticipantIDs    []uuid.UUID
}

// TemplateService manages pot templates and turns them into pots
type TemplateService struct {
	TemplateRepo domain.TemplateRepository
	CurrencyRepo domain.CurrencyRepository
	PotService   *pot.PotService
}

// NewTemplateService creates a new TemplateService instance
func NewTemplateService(templateRepo domain.TemplateRepository, currencyRepo domain.CurrencyRepository, potService *pot.PotService) *TemplateService {
	return &TemplateService{
		TemplateRepo: templateRepo,
		CurrencyRepo: currencyRepo,
		PotService:   potService,
	}
}

// CreateTemplate stores a new template owned by the requester
func (s *TemplateService) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.PotTemplate, error) {
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

	t := &domain.PotTemplate{
		ID:                uuid.New(),
		OwnerID:           input.OwnerID,
		Name:              input.Name,
		DefaultCurrencyID: input.DefaultCurrencyID,
		Occurrence:        input.Occurrence,
		Participants:      participants,
		CreatedAt:         time.Now(),
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.TemplateRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// ListTemplates returns the requester's templates
func (s *TemplateService) ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]*domain.PotTemplate, error) {
	return s.TemplateRepo.ListByOwner(ctx, ownerID)
}

// DeleteTemplate removes a template. Only its owner may delete it.
func (s *TemplateService) DeleteTemplate(ctx context.Context, templateID, requesterID uuid.UUID) error {
	if _, err := s.ownedTemplate(ctx, templateID, requesterID); err != nil {
		return err
	}
	return s.TemplateRepo.Delete(ctx, templateID)
}

// Instantiate creates a pot from the template. The pot is named after the template
// and the date it was created for, e.g. "Rent 2026-03".
func (s *TemplateService) Instantiate(ctx context.Context, templateID, requesterID uuid.UUID, at time.Time) (*domain.Pot, error) {
	t, err := s.ownedTemplate(ctx, templateID, requesterID)
	if err != nil {
		return nil, err
	}

	return s.PotService.CreatePot(ctx, pot.CreatePotInput{
		OwnerID:           t.OwnerID,
		Name:              PotName(t, at),
		DefaultCurrencyID: t.DefaultCurrencyID,
		ParticipantIDs:    t.Participants,
	})
}

// PotName formats the name of a pot created from the template at the given time
func PotName(t *domain.PotTemplate, at time.Time) string {
	switch t.Occurrence {
	case domain.OccurrenceDaily, domain.OccurrenceWeekly:
		return fmt.Sprintf("%s %s", t.Name, at.Format("2006-01-02"))
	case domain.OccurrenceMonthly:
		return fmt.Sprintf("%s %s", t.Name, at.Format("2006-01"))
	case domain.OccurrenceYearly:
		return fmt.Sprintf("%s %s", t.Name, at.Format("2006"))
	default:
		return t.Name
	}
}

func (s *TemplateService) ownedTemplate(ctx context.Context, templateID, requesterID uuid.UUID) (*domain.PotTemplate, error) {
	t, err := s.TemplateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if t.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: the user does not own the pot template with id %s", domain.ErrForbidden, templateID)
	}

	return t, nil
}
