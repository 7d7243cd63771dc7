package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

type memoryGoalRepo struct {
	adapter.GoalRepository
	goals   map[uuid.UUID]*entity.Goal
	updates int
}

func (r *memoryGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *memoryGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	r.updates++
	r.goals[g.ID] = g
	return nil
}

func TestUpdateProgress(t *testing.T) {
	userID := uuid.New()
	g := entity.NewGoal(userID, "Emergency fund", "", decimal.NewFromInt(1000), decimal.Zero,
		time.Now().AddDate(1, 0, 0), entity.GoalPriorityHigh)
	repo := &memoryGoalRepo{goals: map[uuid.UUID]*entity.Goal{g.ID: g}}
	uc := NewUpdateProgressUseCase(repo)
	ctx := context.Background()

	out, err := uc.Execute(ctx, UpdateProgressInput{UserID: userID, GoalID: g.ID, Amount: decimal.NewFromInt(400)})
	require.NoError(t, err)
	assert.Equal(t, "40", out.Goal.ProgressPercentage.String())
	assert.Equal(t, entity.GoalStatusActive, out.Goal.Goal.Status)

	out, err = uc.Execute(ctx, UpdateProgressInput{UserID: userID, GoalID: g.ID, Amount: decimal.NewFromInt(600)})
	require.NoError(t, err)
	assert.Equal(t, entity.GoalStatusCompleted, out.Goal.Goal.Status)

	_, err = uc.Execute(ctx, UpdateProgressInput{UserID: userID, GoalID: g.ID})
	assert.ErrorIs(t, err, domainerror.ErrValidation)

	_, err = uc.Execute(ctx, UpdateProgressInput{UserID: uuid.New(), GoalID: g.ID, Amount: decimal.NewFromInt(1)})
	var goalErr *domainerror.GoalError
	require.ErrorAs(t, err, &goalErr)
	assert.Equal(t, domainerror.ErrCodeGoalNotFound, goalErr.Code)

	assert.Equal(t, 2, repo.updates)
}
