package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// potRepository implements domain.PotRepository
type potRepository struct {
	db *DB
}

// NewPotRepository creates a new pot repository
func NewPotRepository(db *DB) domain.PotRepository {
	return &potRepository{db: db}
}

const selectPot = `
	SELECT p.id, p.name, p.owner_id, p.default_currency_id, p.archived, p.archived_at, p.created_at,
	       COALESCE(array_agg(pu.user_id::text ORDER BY pu.position) FILTER (WHERE pu.user_id IS NOT NULL), '{}')
	FROM pots p
	LEFT JOIN pots_to_users pu ON pu.pot_id = p.id
`

// Create creates a new pot and its participant list in a database transaction
func (r *potRepository) Create(ctx context.Context, pot *domain.Pot) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	insertPotQuery := `
		INSERT INTO pots (id, name, owner_id, default_currency_id, archived, archived_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = dbTx.ExecContext(ctx, insertPotQuery,
		pot.ID,
		pot.Name,
		pot.OwnerID,
		pot.DefaultCurrencyID,
		pot.Archived,
		pot.ArchivedAt,
		pot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pot: %w", err)
	}

	insertUserQuery := `INSERT INTO pots_to_users (pot_id, user_id) VALUES ($1, $2)`
	for _, userID := range pot.Participants {
		if _, err := dbTx.ExecContext(ctx, insertUserQuery, pot.ID, userID); err != nil {
			return fmt.Errorf("failed to insert pot participant: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a pot by its ID
func (r *potRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pot, error) {
	query := selectPot + ` WHERE p.id = $1 GROUP BY p.id`

	pot, err := scanPot(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: pot %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get pot: %w", err)
	}

	return pot, nil
}

// ListByMember retrieves every pot the user owns or participates in, oldest first
func (r *potRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Pot, error) {
	query := selectPot + `
		WHERE p.owner_id = $1
		   OR p.id IN (SELECT pot_id FROM pots_to_users WHERE user_id = $1)
		GROUP BY p.id
		ORDER BY p.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pots: %w", err)
	}
	defer rows.Close()

	var pots []*domain.Pot
	for rows.Next() {
		pot, err := scanPot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pot: %w", err)
		}
		pots = append(pots, pot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pots: %w", err)
	}

	return pots, nil
}

// AddParticipant adds a user to the pot's participant list
func (r *potRepository) AddParticipant(ctx context.Context, potID, userID uuid.UUID) error {
	query := `INSERT INTO pots_to_users (pot_id, user_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, potID, userID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s was previously added to pot %s", domain.ErrConflict, userID, potID)
		}
		return fmt.Errorf("failed to add pot participant: %w", err)
	}

	return nil
}

// RemoveParticipant removes a user from the pot's participant list
func (r *potRepository) RemoveParticipant(ctx context.Context, potID, userID uuid.UUID) error {
	query := `DELETE FROM pots_to_users WHERE pot_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, potID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove pot participant: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("user %s in pot %s", userID, potID))
}

// SetArchived flips the archived flag of the pot
func (r *potRepository) SetArchived(ctx context.Context, potID uuid.UUID, archived bool, archivedAt *time.Time) error {
	query := `UPDATE pots SET archived = $2, archived_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, potID, archived, archivedAt)
	if err != nil {
		return fmt.Errorf("failed to update pot archive state: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("pot %s", potID))
}

// Delete removes the pot; participants and expenses go with it by cascade
func (r *potRepository) Delete(ctx context.Context, potID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pots WHERE id = $1`, potID)
	if err != nil {
		return fmt.Errorf("failed to delete pot: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("pot %s", potID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPot(row rowScanner) (*domain.Pot, error) {
	var pot domain.Pot
	var archivedAt sql.NullTime
	var participants []string

	err := row.Scan(
		&pot.ID,
		&pot.Name,
		&pot.OwnerID,
		&pot.DefaultCurrencyID,
		&pot.Archived,
		&archivedAt,
		&pot.CreatedAt,
		pq.Array(&participants),
	)
	if err != nil {
		return nil, err
	}

	if archivedAt.Valid {
		pot.ArchivedAt = &archivedAt.Time
	}

	pot.Participants, err = parseUUIDs(participants)
	if err != nil {
		return nil, err
	}

	return &pot, nil
}

func expectOneRow(result sql.Result, what string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
	}
	return nil
}
