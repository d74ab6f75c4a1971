package seeder

import (
	"context"
	"errors"

	"github.com/simaogato/potshare-backend/internal/domain"
)

// Fixed ids of the built-in currencies, referenced by pots and expenses
const (
	CurrencyEUR = 1
	CurrencyUSD = 2
	CurrencyGBP = 3
	CurrencyCHF = 4
)

// DefaultCurrencies are the currencies every installation starts with
var DefaultCurrencies = []domain.Currency{
	{ID: CurrencyEUR, Name: "Euro", Symbol: "€"},
	{ID: CurrencyUSD, Name: "US Dollar", Symbol: "$"},
	{ID: CurrencyGBP, Name: "Pound Sterling", Symbol: "£"},
	{ID: CurrencyCHF, Name: "Swiss Franc", Symbol: "CHF"},
}

// CurrencySeeder handles seeding of the built-in currencies
type CurrencySeeder struct {
	repo domain.CurrencyRepository
}

// NewCurrencySeeder creates a new CurrencySeeder instance
func NewCurrencySeeder(repo domain.CurrencyRepository) *CurrencySeeder {
	return &CurrencySeeder{
		repo: repo,
	}
}

// Seed ensures all built-in currencies exist in the database
// If a currency doesn't exist, it creates it
func (s *CurrencySeeder) Seed(ctx context.Context) error {
	for _, c := range DefaultCurrencies {
		_, err := s.repo.GetByID(ctx, c.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		currency := c
		if err := s.repo.Create(ctx, &currency); err != nil {
			return err
		}
	}

	return nil
}
