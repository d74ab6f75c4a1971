package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/potshare-backend/internal/domain"
)

type published struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakeChannel struct {
	published []published
	err       error
	closed    bool
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func newTestPublisher(ch *fakeChannel) *AMQPPublisher {
	return &AMQPPublisher{
		channel:  ch,
		exchange: "potshare",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func sampleExpense() *domain.Expense {
	return &domain.Expense{
		ID:          uuid.New(),
		PotID:       uuid.New(),
		TotalAmount: 1250,
		Splits: []domain.Split{
			{ParticipantID: uuid.New(), Amount: 625},
			{ParticipantID: uuid.New(), Amount: 625},
		},
	}
}

func TestPublishExpenseCreated(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)
	expense := sampleExpense()

	require.NoError(t, p.PublishExpenseCreated(context.Background(), expense))

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "potshare", got.exchange)
	assert.Equal(t, KeyExpenseCreated, got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, got.msg.DeliveryMode)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, expense.ID.String(), body["expense_id"])
	assert.Equal(t, expense.PotID.String(), body["pot_id"])
	assert.Equal(t, 12.5, body["total"])
}

func TestPublishSplitPaid(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)
	expense := sampleExpense()
	split := expense.Splits[1]

	require.NoError(t, p.PublishSplitPaid(context.Background(), expense, split))

	require.Len(t, ch.published, 1)
	assert.Equal(t, KeySplitPaid, ch.published[0].key)

	var msg SplitPaidMessage
	require.NoError(t, json.Unmarshal(ch.published[0].msg.Body, &msg))
	assert.Equal(t, expense.ID, msg.ExpenseID)
	assert.Equal(t, split.ParticipantID, msg.ParticipantID)
	assert.Equal(t, domain.Money(625), msg.Amount)
}

func TestPublish_ChannelError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel/connection is not open")}
	p := newTestPublisher(ch)

	err := p.PublishExpenseCreated(context.Background(), sampleExpense())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish expense.created")
}

func TestClose(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{12, 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, backoff(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestNopPublisher(t *testing.T) {
	var p domain.EventPublisher = NopPublisher{}
	expense := sampleExpense()

	assert.NoError(t, p.PublishExpenseCreated(context.Background(), expense))
	assert.NoError(t, p.PublishSplitPaid(context.Background(), expense, expense.Splits[0]))
}
