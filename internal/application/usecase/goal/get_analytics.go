package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// GetAnalyticsInput represents the input for goal analytics.
type GetAnalyticsInput struct {
	UserID uuid.UUID
}

// GetAnalyticsOutput groups goals by status and priority.
type GetAnalyticsOutput struct {
	Groups []entity.GoalGroupSummary
}

// GetAnalyticsUseCase aggregates goals by status and priority.
type GetAnalyticsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(goalRepo adapter.GoalRepository) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{goalRepo: goalRepo}
}

// Execute performs the aggregation.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	groups, err := uc.goalRepo.SummarizeByStatusAndPriority(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize goals: %w", err)
	}
	return &GetAnalyticsOutput{Groups: groups}, nil
}
