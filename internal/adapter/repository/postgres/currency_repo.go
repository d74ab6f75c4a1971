package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/simaogato/potshare-backend/internal/domain"
)

// currencyRepository implements domain.CurrencyRepository
type currencyRepository struct {
	db *DB
}

// NewCurrencyRepository creates a new currency repository
func NewCurrencyRepository(db *DB) domain.CurrencyRepository {
	return &currencyRepository{db: db}
}

// GetByID retrieves a currency by its ID
func (r *currencyRepository) GetByID(ctx context.Context, id int) (*domain.Currency, error) {
	query := `SELECT id, name, symbol FROM currencies WHERE id = $1`

	var currency domain.Currency
	err := r.db.QueryRowContext(ctx, query, id).Scan(&currency.ID, &currency.Name, &currency.Symbol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}

	return &currency, nil
}

// Create inserts a currency
func (r *currencyRepository) Create(ctx context.Context, currency *domain.Currency) error {
	query := `INSERT INTO currencies (id, name, symbol) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, currency.ID, currency.Name, currency.Symbol); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: currency %d already exists", domain.ErrConflict, currency.ID)
		}
		return fmt.Errorf("failed to create currency: %w", err)
	}

	return nil
}

// List retrieves all currencies ordered by ID
func (r *currencyRepository) List(ctx context.Context) ([]*domain.Currency, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, symbol FROM currencies ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	var currencies []*domain.Currency
	for rows.Next() {
		var currency domain.Currency
		if err := rows.Scan(&currency.ID, &currency.Name, &currency.Symbol); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, &currency)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currencies: %w", err)
	}

	return currencies, nil
}
