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

// expenseRepository implements domain.ExpenseRepository
type expenseRepository struct {
	db *DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *DB) domain.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create creates a new expense with all its splits in a database transaction
func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	insertExpenseQuery := `
		INSERT INTO expenses (id, pot_id, owner_id, payer_id, description, currency_id, total_amount, policy_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = dbTx.ExecContext(ctx, insertExpenseQuery,
		expense.ID,
		expense.PotID,
		expense.OwnerID,
		expense.PayerID,
		expense.Description,
		expense.CurrencyID,
		expense.TotalAmount.String(),
		string(expense.PolicyType),
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	insertSplitQuery := `
		INSERT INTO expense_splits (expense_id, user_id, amount, is_paid, paid_at, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i, split := range expense.Splits {
		_, err = dbTx.ExecContext(ctx, insertSplitQuery,
			expense.ID,
			split.ParticipantID,
			split.Amount.String(),
			split.IsPaid,
			split.PaidAt,
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const selectExpense = `
	SELECT id, pot_id, owner_id, payer_id, description, currency_id, total_amount::text, policy_type, created_at
	FROM expenses
`

// GetByID retrieves an expense with its splits
func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	expense, err := scanExpense(r.db.QueryRowContext(ctx, selectExpense+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	splits, err := r.loadSplits(ctx, []uuid.UUID{expense.ID})
	if err != nil {
		return nil, err
	}
	expense.Splits = splits[expense.ID]

	return expense, nil
}

// ListByPot retrieves all expenses of a pot with their splits, oldest first
func (r *expenseRepository) ListByPot(ctx context.Context, potID uuid.UUID) ([]*domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx, selectExpense+` WHERE pot_id = $1 ORDER BY created_at ASC, id ASC`, potID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	var ids []uuid.UUID
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		ids = append(ids, expense.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	if len(expenses) == 0 {
		return expenses, nil
	}

	// One query for all splits instead of one per expense
	splits, err := r.loadSplits(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, expense := range expenses {
		expense.Splits = splits[expense.ID]
	}

	return expenses, nil
}

// MarkSplitPaid flips an unpaid split to paid.
// The is_paid = FALSE guard turns a concurrent second payment into ErrAlreadyPaid.
func (r *expenseRepository) MarkSplitPaid(ctx context.Context, expenseID, participantID uuid.UUID, paidAt time.Time) error {
	query := `
		UPDATE expense_splits
		SET is_paid = TRUE, paid_at = $3
		WHERE expense_id = $1 AND user_id = $2 AND is_paid = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, expenseID, participantID, paidAt)
	if err != nil {
		return fmt.Errorf("failed to mark split paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: participant %s on expense %s", domain.ErrAlreadyPaid, participantID, expenseID)
	}

	return nil
}

func (r *expenseRepository) loadSplits(ctx context.Context, expenseIDs []uuid.UUID) (map[uuid.UUID][]domain.Split, error) {
	keys := make([]string, len(expenseIDs))
	for i, id := range expenseIDs {
		keys[i] = id.String()
	}

	query := `
		SELECT expense_id, user_id, amount::text, is_paid, paid_at
		FROM expense_splits
		WHERE expense_id = ANY($1::uuid[])
		ORDER BY expense_id, position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("failed to query expense splits: %w", err)
	}
	defer rows.Close()

	splits := make(map[uuid.UUID][]domain.Split, len(expenseIDs))
	for rows.Next() {
		var split domain.Split
		var amountStr string
		var paidAt sql.NullTime

		err := rows.Scan(
			&split.ExpenseID,
			&split.ParticipantID,
			&amountStr,
			&split.IsPaid,
			&paidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}

		split.Amount, err = parseMoney(amountStr)
		if err != nil {
			return nil, err
		}
		if paidAt.Valid {
			split.PaidAt = &paidAt.Time
		}

		splits[split.ExpenseID] = append(splits[split.ExpenseID], split)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense splits: %w", err)
	}

	return splits, nil
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var expense domain.Expense
	var totalStr string
	var policyType string

	err := row.Scan(
		&expense.ID,
		&expense.PotID,
		&expense.OwnerID,
		&expense.PayerID,
		&expense.Description,
		&expense.CurrencyID,
		&totalStr,
		&policyType,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	expense.TotalAmount, err = parseMoney(totalStr)
	if err != nil {
		return nil, err
	}
	expense.PolicyType = domain.SplitPolicyType(policyType)

	return &expense, nil
}
