package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/integration/email/templates"
)

type stubUsers struct {
	adapter.UserRepository
	user *entity.User
}

func (s *stubUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, domainerror.ErrUserNotFound
	}
	return s.user, nil
}

func newAlert(userID uuid.UUID) adapter.BudgetAlert {
	return adapter.BudgetAlert{
		UserID:      userID,
		BudgetID:    uuid.New(),
		BudgetName:  "Groceries",
		Amount:      decimal.NewFromInt(500),
		SpentAmount: decimal.NewFromInt(520),
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		OccurredAt:  time.Now().UTC(),
	}
}

func TestBudgetAlertMailer_Sends(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	user := entity.NewUser("Ana Silva", "ana@example.com", "hash", entity.SexFemale, 30)
	sender := NewMockEmailSender()
	mailer := NewBudgetAlertMailer(&stubUsers{user: user}, sender, renderer, "https://app.example.com/")

	require.NoError(t, mailer.NotifyBudgetExceeded(context.Background(), newAlert(user.ID)))

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ana@example.com", sent[0].To)
	assert.Equal(t, "Budget exceeded: Groceries", sent[0].Subject)
	assert.Equal(t, templates.TemplateBudgetExceeded, sent[0].Tags["kind"])
	assert.Contains(t, sent[0].HTML, "Ana Silva")
	assert.Contains(t, sent[0].HTML, "520.00")
	assert.Contains(t, sent[0].HTML, "https://app.example.com/budgets")
	assert.Contains(t, sent[0].Text, "Over by: 20.00")
	assert.Contains(t, sent[0].Text, "2025-01-01 to 2025-01-31")
}

func TestBudgetAlertMailer_UnknownUser(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	sender := NewMockEmailSender()
	mailer := NewBudgetAlertMailer(&stubUsers{}, sender, renderer, "")

	err = mailer.NotifyBudgetExceeded(context.Background(), newAlert(uuid.New()))
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
	assert.Empty(t, sender.Sent())
}

func TestBudgetAlertMailer_SendFailure(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	user := entity.NewUser("Ana Silva", "ana@example.com", "hash", entity.SexFemale, 30)
	sender := NewMockEmailSender()
	sender.FailError = errors.New("429 rate limited")
	mailer := NewBudgetAlertMailer(&stubUsers{user: user}, sender, renderer, "")

	err = mailer.NotifyBudgetExceeded(context.Background(), newAlert(user.ID))
	assert.ErrorIs(t, err, ErrTemporaryFailure)
}

func TestIsPermanentError(t *testing.T) {
	assert.True(t, isPermanentError(errors.New("401 Unauthorized")))
	assert.True(t, isPermanentError(errors.New("422 validation_error")))
	assert.False(t, isPermanentError(errors.New("503 service unavailable")))
	assert.False(t, isPermanentError(nil))
}
