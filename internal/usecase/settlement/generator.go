package settlement

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// pair is an unordered participant pair, stored with the smaller id first
type pair struct {
	a, b uuid.UUID
}

func newPair(x, y uuid.UUID) (pair, bool) {
	if bytes.Compare(x[:], y[:]) <= 0 {
		return pair{a: x, b: y}, false
	}
	return pair{a: y, b: x}, true
}

// GenerateTransfers derives the open debts of a pot from its expenses.
//
// Logic:
//   - Every unpaid split whose participant is not the expense payer is a debt to the payer
//   - Paid splits and the payer's own split generate nothing
//   - Debts between the same two people are netted, so at most one transfer per pair remains
//   - Transfers are sorted by (From, To) so the output is stable across calls
func GenerateTransfers(expenses []*domain.Expense) []domain.SettlementTransfer {
	// Key: participant pair, Value: net amount owed by pair.a to pair.b (negative means b owes a)
	flows := make(map[pair]domain.Money)

	for _, expense := range expenses {
		for _, split := range expense.Splits {
			if split.IsPaid || split.ParticipantID == expense.PayerID || split.Amount == 0 {
				continue
			}

			p, swapped := newPair(split.ParticipantID, expense.PayerID)
			if swapped {
				flows[p] -= split.Amount
			} else {
				flows[p] += split.Amount
			}
		}
	}

	transfers := make([]domain.SettlementTransfer, 0, len(flows))
	for p, amount := range flows {
		switch {
		case amount > 0:
			transfers = append(transfers, domain.SettlementTransfer{From: p.a, To: p.b, Amount: amount})
		case amount < 0:
			transfers = append(transfers, domain.SettlementTransfer{From: p.b, To: p.a, Amount: -amount})
		}
		// Zero means the two owe each other the same amount, skip
	}

	sort.Slice(transfers, func(i, j int) bool {
		if c := bytes.Compare(transfers[i].From[:], transfers[j].From[:]); c != 0 {
			return c < 0
		}
		return bytes.Compare(transfers[i].To[:], transfers[j].To[:]) < 0
	})

	return transfers
}

// TotalOwedBy sums what the user still owes across the transfers
func TotalOwedBy(transfers []domain.SettlementTransfer, userID uuid.UUID) domain.Money {
	var total domain.Money
	for _, t := range transfers {
		if t.From == userID {
			total += t.Amount
		}
	}
	return total
}

// TotalOwedTo sums what the user is still owed across the transfers
func TotalOwedTo(transfers []domain.SettlementTransfer, userID uuid.UUID) domain.Money {
	var total domain.Money
	for _, t := range transfers {
		if t.To == userID {
			total += t.Amount
		}
	}
	return total
}
