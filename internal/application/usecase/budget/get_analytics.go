package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

// GetAnalyticsInput represents the input for budget analytics. Year and Month
// together restrict the result to budgets overlapping that month.
type GetAnalyticsInput struct {
	UserID uuid.UUID `json:"-"`
	Year   *int      `json:"year" validate:"omitnil,gte=1900,lte=9999"`
	Month  *int      `json:"month" validate:"omitnil,gte=1,lte=12"`
}

// GetAnalyticsOutput groups budgets by status.
type GetAnalyticsOutput struct {
	ByStatus []entity.BudgetStatusSummary
}

// GetAnalyticsUseCase aggregates budgets by status.
type GetAnalyticsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(budgetRepo adapter.BudgetRepository) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{budgetRepo: budgetRepo}
}

// Execute performs the aggregation.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if (input.Year == nil) != (input.Month == nil) {
		return nil, domainerror.NewValidationError(domainerror.FieldError{
			Field:   "month",
			Message: "year and month must be provided together",
		})
	}

	var window valueobject.DateRange
	if input.Year != nil {
		start, end := valueobject.MonthRange(*input.Year, time.Month(*input.Month))
		window = valueobject.DateRange{Start: &start, End: &end}
	}

	summaries, err := uc.budgetRepo.SummarizeByStatus(ctx, input.UserID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize budgets: %w", err)
	}

	return &GetAnalyticsOutput{ByStatus: summaries}, nil
}
