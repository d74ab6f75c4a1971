package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// Routing keys on the topic exchange
const (
	KeyExpenseCreated = "expense.created"
	KeySplitPaid      = "split.paid"
)

// ExpenseCreatedMessage is published after an expense and its splits were stored
type ExpenseCreatedMessage struct {
	ExpenseID uuid.UUID    `json:"expense_id"`
	PotID     uuid.UUID    `json:"pot_id"`
	Total     domain.Money `json:"total"`
	Timestamp time.Time    `json:"timestamp"`
}

// SplitPaidMessage is published after a split was marked paid
type SplitPaidMessage struct {
	ExpenseID     uuid.UUID    `json:"expense_id"`
	ParticipantID uuid.UUID    `json:"participant_id"`
	Amount        domain.Money `json:"amount"`
	Timestamp     time.Time    `json:"timestamp"`
}

// NewExpenseCreatedMessage builds the expense.created body
func NewExpenseCreatedMessage(expense *domain.Expense) *ExpenseCreatedMessage {
	return &ExpenseCreatedMessage{
		ExpenseID: expense.ID,
		PotID:     expense.PotID,
		Total:     expense.TotalAmount,
		Timestamp: time.Now(),
	}
}

// NewSplitPaidMessage builds the split.paid body
func NewSplitPaidMessage(expense *domain.Expense, split domain.Split) *SplitPaidMessage {
	return &SplitPaidMessage{
		ExpenseID:     expense.ID,
		ParticipantID: split.ParticipantID,
		Amount:        split.Amount,
		Timestamp:     time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ToJSON converts the message to JSON bytes
func (m *SplitPaidMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
