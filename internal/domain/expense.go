package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Split is one participant's share of an expense.
// Amount is fixed at creation; only IsPaid changes, once, from false to true.
type Split struct {
	ExpenseID     uuid.UUID
	ParticipantID uuid.UUID
	Amount        Money
	IsPaid        bool
	PaidAt        *time.Time // NULL until the split is paid
}

// Expense represents an expense recorded against a pot
type Expense struct {
	ID          uuid.UUID
	PotID       uuid.UUID
	OwnerID     uuid.UUID // User who recorded the expense; may always mark any split paid
	PayerID     uuid.UUID // Policy payer for SINGLE_PAYER, otherwise the owner
	Description string
	CurrencyID  int
	TotalAmount Money
	PolicyType  SplitPolicyType
	Splits      []Split
	CreatedAt   time.Time
}

// Validate ensures the expense adheres to domain rules
// CRITICAL: the split amounts must add up to TotalAmount exactly
func (e *Expense) Validate() error {
	if e.Description == "" {
		return fmt.Errorf("%w: expense description cannot be empty", ErrInvalidInput)
	}

	if len(e.Splits) == 0 {
		return fmt.Errorf("%w: expense must have at least one split", ErrInvalidInput)
	}

	seen := make(map[uuid.UUID]bool, len(e.Splits))
	var sum Money
	for _, s := range e.Splits {
		if seen[s.ParticipantID] {
			return fmt.Errorf("%w: participant %s has more than one split", ErrInvalidInput, s.ParticipantID)
		}
		seen[s.ParticipantID] = true

		if s.Amount < 0 {
			return fmt.Errorf("%w: split amount cannot be negative", ErrInvalidInput)
		}
		sum += s.Amount
	}

	if sum != e.TotalAmount {
		return fmt.Errorf("%w: sum of splits %s must equal expense total %s", ErrInvalidInput, sum, e.TotalAmount)
	}

	return nil
}

// SplitFor returns the split of the given participant, if any
func (e *Expense) SplitFor(participantID uuid.UUID) (Split, bool) {
	for _, s := range e.Splits {
		if s.ParticipantID == participantID {
			return s, true
		}
	}
	return Split{}, false
}
