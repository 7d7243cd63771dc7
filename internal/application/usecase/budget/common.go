// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

func budgetNotFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}

// findOwnedBudget loads a budget and hides budgets owned by someone else.
func findOwnedBudget(ctx context.Context, repo adapter.BudgetRepository, userID, id uuid.UUID) (*entity.Budget, error) {
	b, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, budgetNotFound()
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if b.UserID != userID {
		return nil, budgetNotFound()
	}
	return b, nil
}

// ensureNoOverlap rejects a window that intersects another same-named budget of the user.
// The check is not transactional, so concurrent creates can both pass.
func ensureNoOverlap(ctx context.Context, repo adapter.BudgetRepository, userID uuid.UUID, name string, start, end time.Time, excludeID uuid.UUID) error {
	sameName, err := repo.FindByName(ctx, userID, name)
	if err != nil {
		return fmt.Errorf("failed to check budget overlap: %w", err)
	}

	if conflict := entity.FindOverlappingBudget(sameName, name, start, end, excludeID); conflict != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetOverlap,
			"a budget with this name already exists for the overlapping period",
			domainerror.ErrBudgetOverlap,
		)
	}
	return nil
}

// remeasure recomputes spent amount from the live expenses inside the budget window.
func remeasure(ctx context.Context, repo adapter.TransactionRepository, b *entity.Budget) error {
	spent, err := repo.SumExpensesInWindow(ctx, b.UserID, b.StartDate, b.EndDate)
	if err != nil {
		return fmt.Errorf("failed to measure budget spending: %w", err)
	}
	b.ResetSpending(spent)
	return nil
}
