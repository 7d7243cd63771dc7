package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

type published struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakeChannel struct {
	declareErr error
	publishErr error
	declared   []string
	published  []published
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp091.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func testAlert() adapter.BudgetAlert {
	return adapter.BudgetAlert{
		UserID:      uuid.New(),
		BudgetID:    uuid.New(),
		BudgetName:  "Groceries",
		Amount:      decimal.NewFromInt(500),
		SpentAmount: decimal.RequireFromString("520.5"),
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		OccurredAt:  time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishesPersistentJSON(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "finance.events", "budget.exceeded")
	require.NoError(t, err)
	assert.Equal(t, []string{"finance.events:topic"}, ch.declared)

	alert := testAlert()
	require.NoError(t, p.NotifyBudgetExceeded(context.Background(), alert))

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "finance.events", got.exchange)
	assert.Equal(t, "budget.exceeded", got.key)
	assert.Equal(t, amqp091.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, EventBudgetExceeded, got.msg.Type)

	var body BudgetExceededMessage
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, alert.BudgetID.String(), body.BudgetID)
	assert.Equal(t, "500.00", body.Amount)
	assert.Equal(t, "520.50", body.SpentAmount)
	assert.Equal(t, "2025-01-31", body.EndDate)
}

func TestPublisher_DeclareFailureClosesChannel(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}
	_, err := newPublisher(ch, "finance.events", "budget.exceeded")
	assert.Error(t, err)
	assert.True(t, ch.closed)
}

func TestPublisher_PublishFailure(t *testing.T) {
	ch := &fakeChannel{publishErr: amqp091.ErrClosed}
	p, err := newPublisher(ch, "finance.events", "budget.exceeded")
	require.NoError(t, err)

	err = p.NotifyBudgetExceeded(context.Background(), testAlert())
	assert.ErrorIs(t, err, amqp091.ErrClosed)
}
