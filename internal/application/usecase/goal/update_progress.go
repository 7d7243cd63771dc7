package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// UpdateProgressInput adds Amount to a goal's current amount. A negative amount
// records a withdrawal.
type UpdateProgressInput struct {
	UserID uuid.UUID       `json:"-"`
	GoalID uuid.UUID       `json:"-"`
	Amount decimal.Decimal `json:"amount" validate:"ne=0"`
}

// UpdateProgressOutput represents the output of a progress update.
type UpdateProgressOutput struct {
	Goal *entity.GoalWithProgress
}

// UpdateProgressUseCase handles incremental goal progress.
type UpdateProgressUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateProgressUseCase creates a new UpdateProgressUseCase instance.
func NewUpdateProgressUseCase(goalRepo adapter.GoalRepository) *UpdateProgressUseCase {
	return &UpdateProgressUseCase{goalRepo: goalRepo}
}

// Execute performs the progress update.
func (uc *UpdateProgressUseCase) Execute(ctx context.Context, input UpdateProgressInput) (*UpdateProgressOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	g, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	g.AddProgress(input.Amount)

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal progress: %w", err)
	}

	return &UpdateProgressOutput{Goal: withProgress(g)}, nil
}
