package budget

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

// UpdateBudgetInput represents a partial budget update. Nil fields are left unchanged.
type UpdateBudgetInput struct {
	UserID      uuid.UUID        `json:"-"`
	BudgetID    uuid.UUID        `json:"-"`
	Name        *string          `json:"name" validate:"omitnil,min=2,max=100"`
	Description *string          `json:"description" validate:"omitnil,max=500"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitnil,gte=0.01"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Status      *string          `json:"status" validate:"omitnil,oneof=active completed exceeded paused"`
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the budget update. The window is validated after merging the
// provided dates with the stored ones. Changing the window or amount, or moving a
// paused or completed budget back to a tracked status, re-measures spending. A
// paused or completed status is kept as given; a tracked one is derived from the
// measured spending whenever a re-measure runs.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	b, err := findOwnedBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID)
	if err != nil {
		return nil, err
	}

	name, start, end := b.Name, b.StartDate, b.EndDate
	if input.Name != nil {
		name = *input.Name
	}
	if input.StartDate != nil {
		start = entity.TruncateToDay(*input.StartDate)
	}
	if input.EndDate != nil {
		end = entity.TruncateToDay(*input.EndDate)
	}

	if input.StartDate != nil || input.EndDate != nil {
		if err := validation.DateWindow(start, end); err != nil {
			return nil, err
		}
	}

	if err := ensureNoOverlap(ctx, uc.budgetRepo, input.UserID, name, start, end, b.ID); err != nil {
		return nil, err
	}

	b.Name, b.StartDate, b.EndDate = name, start, end
	if input.Description != nil {
		b.Description = *input.Description
	}
	if input.Amount != nil {
		b.Amount = *input.Amount
	}

	wasTracked := b.IsTracked()
	if input.Status != nil {
		b.Status = entity.BudgetStatus(*input.Status)
	}

	// Expenses written while the budget was paused or completed never reached it.
	resumed := !wasTracked && b.IsTracked()
	if resumed || input.StartDate != nil || input.EndDate != nil || input.Amount != nil {
		if err := remeasure(ctx, uc.transactionRepo, b); err != nil {
			return nil, err
		}
	}
	b.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: b}, nil
}
