package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Status *entity.BudgetStatus
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithUsage
}

// ListBudgetsUseCase lists budgets with their spending measured from live transactions.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.ListByUser(ctx, input.UserID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	out := make([]*entity.BudgetWithUsage, 0, len(budgets))
	for _, b := range budgets {
		spent, err := uc.transactionRepo.SumExpensesInWindow(ctx, input.UserID, b.StartDate, b.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to measure budget %s: %w", b.ID, err)
		}
		out = append(out, entity.NewBudgetWithUsage(b, spent))
	}

	return &ListBudgetsOutput{Budgets: out}, nil
}
