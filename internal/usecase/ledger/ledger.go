package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// NetBalance returns the pot-level balance: the flat sum of every expense total.
// It does not net individual splits against participants.
func NetBalance(expenses []*domain.Expense) domain.Money {
	var balance domain.Money
	for _, e := range expenses {
		balance += e.TotalAmount
	}
	return balance
}

// PaidRatio counts the paid splits of an expense against all of its splits
func PaidRatio(expense *domain.Expense) (paid, total int) {
	for _, s := range expense.Splits {
		if s.IsPaid {
			paid++
		}
	}
	return paid, len(expense.Splits)
}

// Outstanding sums the amounts of every split that is still unpaid
func Outstanding(expenses []*domain.Expense) domain.Money {
	var outstanding domain.Money
	for _, e := range expenses {
		for _, s := range e.Splits {
			if !s.IsPaid {
				outstanding += s.Amount
			}
		}
	}
	return outstanding
}

// CanMarkPaid is the only authorization rule for the paid-state transition.
// The split's own participant or the expense owner may mark it, as long as it is
// still unpaid and the pot is not archived.
func CanMarkPaid(currentUserID uuid.UUID, split domain.Split, expenseOwnerID uuid.UUID, archived bool) bool {
	if split.IsPaid || archived {
		return false
	}
	return currentUserID == split.ParticipantID || currentUserID == expenseOwnerID
}

// MarkPaid returns a copy of the split flagged as paid at the given time.
// The input is never modified and a paid split is never reverted.
func MarkPaid(split domain.Split, at time.Time) (domain.Split, error) {
	if split.IsPaid {
		return split, fmt.Errorf("%w: participant %s", domain.ErrAlreadyPaid, split.ParticipantID)
	}

	paidAt := at
	split.IsPaid = true
	split.PaidAt = &paidAt
	return split, nil
}

// CanDelete reports whether the pot may be deleted: it has no expenses or a zero balance,
// and it is not archived.
func CanDelete(pot *domain.Pot, expenses []*domain.Expense) bool {
	if pot.Archived {
		return false
	}
	return len(expenses) == 0 || NetBalance(expenses) == 0
}

// CanArchive reports whether the pot may be archived: zero balance and not archived yet
func CanArchive(pot *domain.Pot, expenses []*domain.Expense) bool {
	if pot.Archived {
		return false
	}
	return NetBalance(expenses) == 0
}
