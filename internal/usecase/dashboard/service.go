package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/potshare-backend/internal/domain"
	"github.com/simaogato/potshare-backend/internal/usecase/ledger"
)

// PotOverview represents one pot card on the overview page
type PotOverview struct {
	PotID        uuid.UUID
	Name         string
	OwnerID      uuid.UUID
	Currency     *domain.Currency
	Participants []uuid.UUID
	Balance      domain.Money
	Outstanding  domain.Money
	ExpenseCount int
	Archived     bool
}

// DashboardService handles overview-related operations
type DashboardService struct {
	PotRepo      domain.PotRepository
	ExpenseRepo  domain.ExpenseRepository
	CurrencyRepo domain.CurrencyRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	potRepo domain.PotRepository,
	expenseRepo domain.ExpenseRepository,
	currencyRepo domain.CurrencyRepository,
) *DashboardService {
	return &DashboardService{
		PotRepo:      potRepo,
		ExpenseRepo:  expenseRepo,
		CurrencyRepo: currencyRepo,
	}
}

// ListPotOverviews builds an overview card for every pot of the user
// Logic:
//   - Currencies are loaded once and looked up by id
//   - Balance: NetBalance of the pot's expenses
//   - Outstanding: sum of unpaid splits
func (s *DashboardService) ListPotOverviews(ctx context.Context, userID uuid.UUID) ([]PotOverview, error) {
	// 1. Load pots and currencies
	pots, err := s.PotRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pots: %w", err)
	}

	currencies, err := s.CurrencyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	currencyByID := make(map[int]*domain.Currency, len(currencies))
	for _, c := range currencies {
		currencyByID[c.ID] = c
	}

	// 2. Aggregate each pot
	overviews := make([]PotOverview, 0, len(pots))
	for _, pot := range pots {
		expenses, err := s.ExpenseRepo.ListByPot(ctx, pot.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list expenses of pot %s: %w", pot.ID, err)
		}

		overviews = append(overviews, PotOverview{
			PotID:        pot.ID,
			Name:         pot.Name,
			OwnerID:      pot.OwnerID,
			Currency:     currencyByID[pot.DefaultCurrencyID],
			Participants: pot.Participants,
			Balance:      ledger.NetBalance(expenses),
			Outstanding:  ledger.Outstanding(expenses),
			ExpenseCount: len(expenses),
			Archived:     pot.Archived,
		})
	}

	return overviews, nil
}
