package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// templateRepository implements domain.TemplateRepository
type templateRepository struct {
	db *DB
}

// NewTemplateRepository creates a new pot template repository
func NewTemplateRepository(db *DB) domain.TemplateRepository {
	return &templateRepository{db: db}
}

const selectTemplate = `
	SELECT t.id, t.owner_id, t.name, t.default_currency_id, t.occurrence, t.created_at,
	       COALESCE(array_agg(tu.user_id::text ORDER BY tu.position) FILTER (WHERE tu.user_id IS NOT NULL), '{}')
	FROM pot_templates t
	LEFT JOIN pot_template_users tu ON tu.template_id = t.id
`

// Create creates a template with its users in a database transaction
func (r *templateRepository) Create(ctx context.Context, template *domain.PotTemplate) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	_, err = dbTx.ExecContext(ctx, `
		INSERT INTO pot_templates (id, owner_id, name, default_currency_id, occurrence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		template.ID,
		template.OwnerID,
		template.Name,
		template.DefaultCurrencyID,
		string(template.Occurrence),
		template.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pot template: %w", err)
	}

	for i, userID := range template.Participants {
		_, err := dbTx.ExecContext(ctx,
			`INSERT INTO pot_template_users (template_id, user_id, position) VALUES ($1, $2, $3)`,
			template.ID, userID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert pot template user: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a template by its ID
func (r *templateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PotTemplate, error) {
	template, err := scanTemplate(r.db.QueryRowContext(ctx, selectTemplate+` WHERE t.id = $1 GROUP BY t.id`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: pot template %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get pot template: %w", err)
	}
	return template, nil
}

// ListByOwner retrieves the templates of an owner, oldest first
func (r *templateRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.PotTemplate, error) {
	rows, err := r.db.QueryContext(ctx, selectTemplate+` WHERE t.owner_id = $1 GROUP BY t.id ORDER BY t.created_at ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pot templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.PotTemplate
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pot template: %w", err)
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pot templates: %w", err)
	}

	return templates, nil
}

// Delete removes a template and its users
func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pot_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pot template: %w", err)
	}
	return expectOneRow(result, fmt.Sprintf("pot template %s", id))
}

func scanTemplate(row rowScanner) (*domain.PotTemplate, error) {
	var template domain.PotTemplate
	var occurrence string
	var users []string

	err := row.Scan(
		&template.ID,
		&template.OwnerID,
		&template.Name,
		&template.DefaultCurrencyID,
		&occurrence,
		&template.CreatedAt,
		pq.Array(&users),
	)
	if err != nil {
		return nil, err
	}

	template.Occurrence = domain.Occurrence(occurrence)
	template.Participants, err = parseUUIDs(users)
	if err != nil {
		return nil, err
	}

	return &template, nil
}
