package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PotRepository defines the interface for pot persistence operations
type PotRepository interface {
	// Create creates a new pot together with its participant list
	Create(ctx context.Context, pot *Pot) error

	// GetByID retrieves a pot by its ID
	// Returns an error wrapping ErrNotFound if the pot does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*Pot, error)

	// ListByMember retrieves every pot the user owns or participates in
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*Pot, error)

	// AddParticipant adds a user to the pot's participant list
	AddParticipant(ctx context.Context, potID, userID uuid.UUID) error

	// RemoveParticipant removes a user from the pot's participant list
	RemoveParticipant(ctx context.Context, potID, userID uuid.UUID) error

	// SetArchived flips the archived flag; archivedAt is nil when unarchiving
	SetArchived(ctx context.Context, potID uuid.UUID, archived bool, archivedAt *time.Time) error

	// Delete removes the pot and, by cascade, its expenses
	Delete(ctx context.Context, potID uuid.UUID) error
}

// ExpenseRepository defines the interface for expense persistence operations
type ExpenseRepository interface {
	// Create creates a new expense with all its splits in a single database transaction
	Create(ctx context.Context, expense *Expense) error

	// GetByID retrieves an expense with its splits
	GetByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// ListByPot retrieves all expenses of a pot, oldest first
	ListByPot(ctx context.Context, potID uuid.UUID) ([]*Expense, error)

	// MarkSplitPaid sets is_paid on an unpaid split
	// Returns an error wrapping ErrAlreadyPaid if the split was paid concurrently
	MarkSplitPaid(ctx context.Context, expenseID, participantID uuid.UUID, paidAt time.Time) error
}

// CurrencyRepository defines the interface for currency persistence operations
type CurrencyRepository interface {
	GetByID(ctx context.Context, id int) (*Currency, error)
	Create(ctx context.Context, currency *Currency) error
	List(ctx context.Context) ([]*Currency, error)
}

// TemplateRepository defines the interface for pot template persistence operations
type TemplateRepository interface {
	Create(ctx context.Context, template *PotTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*PotTemplate, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PotTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventPublisher announces successful mutations so other systems can refresh.
// Publishing happens after the write is committed.
type EventPublisher interface {
	PublishExpenseCreated(ctx context.Context, expense *Expense) error
	PublishSplitPaid(ctx context.Context, expense *Expense, split Split) error
}
