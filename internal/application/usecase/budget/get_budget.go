package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// WindowTransactionsLimit caps the expenses returned with a single budget.
const WindowTransactionsLimit = 20

// GetBudgetInput represents the input for reading one budget.
type GetBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetBudgetOutput is a budget with its usage and the expenses inside its window.
type GetBudgetOutput struct {
	Budget       *entity.BudgetWithUsage
	Transactions []*entity.TransactionWithCategory
}

// GetBudgetUseCase reads a single budget.
type GetBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the budget lookup.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	b, err := findOwnedBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID)
	if err != nil {
		return nil, err
	}

	spent, err := uc.transactionRepo.SumExpensesInWindow(ctx, input.UserID, b.StartDate, b.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to measure budget: %w", err)
	}

	txns, err := uc.transactionRepo.FindExpensesInWindow(ctx, input.UserID, b.StartDate, b.EndDate, WindowTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget transactions: %w", err)
	}

	return &GetBudgetOutput{
		Budget:       entity.NewBudgetWithUsage(b, spent),
		Transactions: txns,
	}, nil
}
