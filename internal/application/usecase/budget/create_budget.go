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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID      uuid.UUID       `json:"-"`
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0.01"`
	StartDate   time.Time       `json:"startDate" validate:"required"`
	EndDate     time.Time       `json:"endDate" validate:"required,gtfield=StartDate"`
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the budget creation. Expenses already recorded inside the
// window are counted towards the new budget.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if err := ensureNoOverlap(ctx, uc.budgetRepo, input.UserID, input.Name, input.StartDate, input.EndDate, uuid.Nil); err != nil {
		return nil, err
	}

	b := entity.NewBudget(input.UserID, input.Name, input.Description, input.Amount, input.StartDate, input.EndDate)
	if err := remeasure(ctx, uc.transactionRepo, b); err != nil {
		return nil, err
	}

	if err := uc.budgetRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: b}, nil
}
