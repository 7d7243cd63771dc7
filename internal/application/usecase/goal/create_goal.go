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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID       `json:"-"`
	Name          string          `json:"name" validate:"required,min=2,max=100"`
	Description   string          `json:"description" validate:"max=500"`
	TargetAmount  decimal.Decimal `json:"targetAmount" validate:"gte=0.01"`
	CurrentAmount decimal.Decimal `json:"currentAmount" validate:"gte=0"`
	TargetDate    time.Time       `json:"targetDate" validate:"required,futuredate"`
	Priority      string          `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.GoalWithProgress
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if err := ensureUniqueName(ctx, uc.goalRepo, input.UserID, input.Name, uuid.Nil); err != nil {
		return nil, err
	}

	g := entity.NewGoal(
		input.UserID,
		input.Name,
		input.Description,
		input.TargetAmount,
		input.CurrentAmount,
		input.TargetDate,
		entity.GoalPriority(input.Priority),
	)

	if err := uc.goalRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: withProgress(g)}, nil
}
