package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// UpdateGoalInput represents a partial goal update. Nil fields are left unchanged.
type UpdateGoalInput struct {
	UserID        uuid.UUID        `json:"-"`
	GoalID        uuid.UUID        `json:"-"`
	Name          *string          `json:"name" validate:"omitnil,min=2,max=100"`
	Description   *string          `json:"description" validate:"omitnil,max=500"`
	TargetAmount  *decimal.Decimal `json:"targetAmount" validate:"omitnil,gte=0.01"`
	CurrentAmount *decimal.Decimal `json:"currentAmount" validate:"omitnil,gte=0"`
	TargetDate    *time.Time       `json:"targetDate"`
	Status        *string          `json:"status" validate:"omitnil,oneof=active completed paused cancelled"`
	Priority      *string          `json:"priority" validate:"omitnil,oneof=low medium high"`
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.GoalWithProgress
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal update. Setting a current amount at or above the
// target completes the goal.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	g, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != g.Name {
		if err := ensureUniqueName(ctx, uc.goalRepo, input.UserID, *input.Name, g.ID); err != nil {
			return nil, err
		}
		g.Name = *input.Name
	}
	if input.Description != nil {
		g.Description = *input.Description
	}
	if input.TargetAmount != nil {
		g.TargetAmount = *input.TargetAmount
	}
	if input.TargetDate != nil {
		g.TargetDate = entity.TruncateToDay(*input.TargetDate)
	}
	if input.Status != nil {
		g.Status = entity.GoalStatus(*input.Status)
	}
	if input.Priority != nil {
		g.Priority = entity.GoalPriority(*input.Priority)
	}
	if input.CurrentAmount != nil {
		g.CurrentAmount = *input.CurrentAmount
		g.CompleteIfReached()
	}
	g.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: withProgress(g)}, nil
}
