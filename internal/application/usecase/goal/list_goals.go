package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID   uuid.UUID `json:"-"`
	Status   string    `json:"status" validate:"omitempty,oneof=active completed paused cancelled"`
	Priority string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	SortBy   string    `json:"sortBy" validate:"omitempty,oneof=targetDate createdAt targetAmount priority name"`
	Order    string    `json:"order" validate:"omitempty,oneof=asc desc ASC DESC"`
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.GoalWithProgress
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{goalRepo: goalRepo}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	filter := entity.GoalFilter{SortBy: input.SortBy, Order: input.Order}
	if input.Status != "" {
		status := entity.GoalStatus(input.Status)
		filter.Status = &status
	}
	if input.Priority != "" {
		priority := entity.GoalPriority(input.Priority)
		filter.Priority = &priority
	}

	goals, err := uc.goalRepo.List(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	out := make([]*entity.GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, withProgress(g))
	}

	return &ListGoalsOutput{Goals: out}, nil
}
