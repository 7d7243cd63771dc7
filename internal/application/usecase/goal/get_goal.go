package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// GetGoalInput represents the input for reading one goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalUseCase reads a single goal with its progress.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal lookup.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*entity.GoalWithProgress, error) {
	g, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}
	return withProgress(g), nil
}
