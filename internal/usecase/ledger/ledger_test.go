package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/potshare-backend/internal/domain"
)

func newExpense(owner uuid.UUID, splits ...domain.Split) *domain.Expense {
	var total domain.Money
	for _, s := range splits {
		total += s.Amount
	}
	return &domain.Expense{
		ID:          uuid.New(),
		OwnerID:     owner,
		PayerID:     owner,
		Description: "Groceries",
		TotalAmount: total,
		Splits:      splits,
	}
}

func TestNetBalance(t *testing.T) {
	owner := uuid.New()

	assert.Equal(t, domain.Money(0), NetBalance(nil))

	expenses := []*domain.Expense{
		newExpense(owner, domain.Split{ParticipantID: owner, Amount: 1000}),
		newExpense(owner, domain.Split{ParticipantID: owner, Amount: 250}),
	}
	assert.Equal(t, domain.Money(1250), NetBalance(expenses))

	// Signed totals cancel out
	refund := newExpense(owner, domain.Split{ParticipantID: owner, Amount: 0})
	refund.TotalAmount = -1250
	assert.Equal(t, domain.Money(0), NetBalance(append(expenses, refund)))
}

func TestPaidRatio(t *testing.T) {
	owner := uuid.New()
	expense := newExpense(owner,
		domain.Split{ParticipantID: owner, Amount: 334, IsPaid: true},
		domain.Split{ParticipantID: uuid.New(), Amount: 333},
		domain.Split{ParticipantID: uuid.New(), Amount: 333, IsPaid: true},
	)

	paid, total := PaidRatio(expense)

	assert.Equal(t, 2, paid)
	assert.Equal(t, 3, total)
}

func TestOutstanding(t *testing.T) {
	owner := uuid.New()
	expenses := []*domain.Expense{
		newExpense(owner,
			domain.Split{ParticipantID: owner, Amount: 334, IsPaid: true},
			domain.Split{ParticipantID: uuid.New(), Amount: 333},
		),
		newExpense(owner, domain.Split{ParticipantID: uuid.New(), Amount: 50}),
	}

	assert.Equal(t, domain.Money(383), Outstanding(expenses))
}

func TestCanMarkPaid(t *testing.T) {
	participant := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	unpaid := domain.Split{ParticipantID: participant, Amount: 500}
	paid := domain.Split{ParticipantID: participant, Amount: 500, IsPaid: true}

	tests := []struct {
		name     string
		user     uuid.UUID
		split    domain.Split
		archived bool
		expected bool
	}{
		{name: "participant marks own split", user: participant, split: unpaid, expected: true},
		{name: "expense owner marks any split", user: owner, split: unpaid, expected: true},
		{name: "other user is rejected", user: stranger, split: unpaid, expected: false},
		{name: "already paid", user: participant, split: paid, expected: false},
		{name: "already paid for owner", user: owner, split: paid, expected: false},
		{name: "archived pot", user: participant, split: unpaid, archived: true, expected: false},
		{name: "archived pot for owner", user: owner, split: unpaid, archived: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanMarkPaid(tt.user, tt.split, owner, tt.archived))
		})
	}
}

func TestMarkPaid(t *testing.T) {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	split := domain.Split{ParticipantID: uuid.New(), Amount: 500}

	paid, err := MarkPaid(split, at)

	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, at, *paid.PaidAt)
	assert.Equal(t, domain.Money(500), paid.Amount)

	// Input untouched
	assert.False(t, split.IsPaid)
	assert.Nil(t, split.PaidAt)
}

func TestMarkPaid_Twice(t *testing.T) {
	split := domain.Split{ParticipantID: uuid.New(), Amount: 500}

	paid, err := MarkPaid(split, time.Now())
	require.NoError(t, err)

	again, err := MarkPaid(paid, time.Now())

	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.True(t, again.IsPaid, "a paid split never goes back to unpaid")
	assert.Equal(t, paid.PaidAt, again.PaidAt)
}

func TestCanDeleteAndCanArchive(t *testing.T) {
	owner := uuid.New()
	nonZero := []*domain.Expense{newExpense(owner, domain.Split{ParticipantID: owner, Amount: 1000})}
	zeroSum := []*domain.Expense{
		newExpense(owner, domain.Split{ParticipantID: owner, Amount: 1000}),
		func() *domain.Expense {
			e := newExpense(owner, domain.Split{ParticipantID: owner, Amount: 0})
			e.TotalAmount = -1000
			return e
		}(),
	}

	tests := []struct {
		name          string
		archived      bool
		expenses      []*domain.Expense
		expectDelete  bool
		expectArchive bool
	}{
		{name: "empty pot", expenses: nil, expectDelete: true, expectArchive: true},
		{name: "non-zero balance", expenses: nonZero, expectDelete: false, expectArchive: false},
		{name: "zero balance with expenses", expenses: zeroSum, expectDelete: true, expectArchive: true},
		{name: "archived empty pot", archived: true, expenses: nil, expectDelete: false, expectArchive: false},
		{name: "archived zero balance", archived: true, expenses: zeroSum, expectDelete: false, expectArchive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pot := &domain.Pot{ID: uuid.New(), OwnerID: owner, Archived: tt.archived}

			assert.Equal(t, tt.expectDelete, CanDelete(pot, tt.expenses))
			assert.Equal(t, tt.expectArchive, CanArchive(pot, tt.expenses))
		})
	}
}

func TestSummarize(t *testing.T) {
	owner := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	pot := &domain.Pot{ID: uuid.New(), Name: "Trip", OwnerID: owner, Participants: []uuid.UUID{owner, bob, carol}}

	expense := newExpense(owner,
		domain.Split{ParticipantID: owner, Amount: 334, IsPaid: true},
		domain.Split{ParticipantID: bob, Amount: 333},
		domain.Split{ParticipantID: carol, Amount: 333},
	)

	summary := Summarize(pot, []*domain.Expense{expense}, bob)

	assert.Equal(t, pot.ID, summary.PotID)
	assert.Equal(t, "Trip", summary.Name)
	assert.Equal(t, domain.Money(1000), summary.Balance)
	assert.Equal(t, domain.Money(666), summary.Outstanding)
	assert.False(t, summary.CanDelete)
	assert.False(t, summary.CanArchive)

	require.Len(t, summary.Expenses, 1)
	row := summary.Expenses[0]
	assert.Equal(t, 1, row.Paid)
	assert.Equal(t, 3, row.Total)
	require.Len(t, row.Splits, 3)
	assert.False(t, row.Splits[0].CanMarkPaid, "owner split is already paid")
	assert.True(t, row.Splits[1].CanMarkPaid, "bob may mark his own split")
	assert.False(t, row.Splits[2].CanMarkPaid, "bob may not mark carol's split")

	ownerView := Summarize(pot, []*domain.Expense{expense}, owner)
	assert.True(t, ownerView.Expenses[0].Splits[2].CanMarkPaid, "owner may mark any unpaid split")
}

func TestSummarize_EmptyPot(t *testing.T) {
	pot := &domain.Pot{ID: uuid.New(), Name: "Empty", OwnerID: uuid.New()}

	summary := Summarize(pot, nil, pot.OwnerID)

	assert.Empty(t, summary.Expenses)
	assert.True(t, summary.CanDelete)
	assert.True(t, summary.CanArchive)
}
