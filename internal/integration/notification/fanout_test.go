package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

type recordingNotifier struct {
	err   error
	calls int
}

func (r *recordingNotifier) NotifyBudgetExceeded(context.Context, adapter.BudgetAlert) error {
	r.calls++
	return r.err
}

func TestNewFanout_NoneConfigured(t *testing.T) {
	assert.Nil(t, NewFanout())
	assert.Nil(t, NewFanout(nil, nil))
}

func TestFanout_CallsEveryNotifier(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("smtp down")}
	ok := &recordingNotifier{}

	n := NewFanout(failing, nil, ok)
	err := n.NotifyBudgetExceeded(context.Background(), adapter.BudgetAlert{BudgetID: uuid.New()})

	assert.ErrorContains(t, err, "smtp down")
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, ok.calls)
}
