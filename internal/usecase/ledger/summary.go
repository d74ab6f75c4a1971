package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// SplitView is one split as seen by the current user
type SplitView struct {
	ParticipantID uuid.UUID
	Amount        domain.Money
	IsPaid        bool
	PaidAt        *time.Time
	CanMarkPaid   bool
}

// ExpenseView is one row of the pot summary
type ExpenseView struct {
	ExpenseID   uuid.UUID
	Description string
	OwnerID     uuid.UUID
	PayerID     uuid.UUID
	CurrencyID  int
	TotalAmount domain.Money
	Paid        int
	Total       int
	Splits      []SplitView
	CreatedAt   time.Time
}

// PotSummary is the derived view of a pot for one user.
// It is recomputed from the expense list on every request.
type PotSummary struct {
	PotID       uuid.UUID
	Name        string
	Archived    bool
	Balance     domain.Money
	Outstanding domain.Money
	CanDelete   bool
	CanArchive  bool
	Expenses    []ExpenseView
	Transfers   []domain.SettlementTransfer // Filled in by the caller
	YouOwe      domain.Money                // Requester's share of Transfers, filled in by the caller
	OwedToYou   domain.Money
}

// Summarize builds the pot summary for currentUserID
func Summarize(pot *domain.Pot, expenses []*domain.Expense, currentUserID uuid.UUID) PotSummary {
	summary := PotSummary{
		PotID:       pot.ID,
		Name:        pot.Name,
		Archived:    pot.Archived,
		Balance:     NetBalance(expenses),
		Outstanding: Outstanding(expenses),
		CanDelete:   CanDelete(pot, expenses),
		CanArchive:  CanArchive(pot, expenses),
		Expenses:    make([]ExpenseView, 0, len(expenses)),
	}

	for _, e := range expenses {
		paid, total := PaidRatio(e)
		view := ExpenseView{
			ExpenseID:   e.ID,
			Description: e.Description,
			OwnerID:     e.OwnerID,
			PayerID:     e.PayerID,
			CurrencyID:  e.CurrencyID,
			TotalAmount: e.TotalAmount,
			Paid:        paid,
			Total:       total,
			Splits:      make([]SplitView, len(e.Splits)),
			CreatedAt:   e.CreatedAt,
		}
		for i, s := range e.Splits {
			view.Splits[i] = SplitView{
				ParticipantID: s.ParticipantID,
				Amount:        s.Amount,
				IsPaid:        s.IsPaid,
				PaidAt:        s.PaidAt,
				CanMarkPaid:   CanMarkPaid(currentUserID, s, e.OwnerID, pot.Archived),
			}
		}
		summary.Expenses = append(summary.Expenses, view)
	}

	return summary
}
