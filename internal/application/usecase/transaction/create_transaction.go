package transaction

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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID       `json:"-"`
	CategoryID  uuid.UUID       `json:"categoryId" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0.01"`
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Date        time.Time       `json:"date" validate:"required"`
	Description string          `json:"description" validate:"required,min=1,max=255"`
	Notes       string          `json:"notes" validate:"max=1000"`
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// CreateTransactionUseCase records a transaction and credits it to covering budgets.
type CreateTransactionUseCase struct {
	unitOfWork adapter.UnitOfWork
	notifier   adapter.BudgetAlertNotifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
// notifier may be nil.
func NewCreateTransactionUseCase(unitOfWork adapter.UnitOfWork, notifier adapter.BudgetAlertNotifier) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		unitOfWork: unitOfWork,
		notifier:   notifier,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	input.Description = strings.TrimSpace(input.Description)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	transactionType := entity.TransactionType(input.Type)
	var (
		result   *entity.TransactionWithCategory
		exceeded []*entity.Budget
	)

	err := uc.unitOfWork.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		category, err := findMatchingCategory(ctx, repos.Categories, input.UserID, input.CategoryID, transactionType)
		if err != nil {
			return err
		}

		txn := entity.NewTransaction(
			input.UserID,
			category.ID,
			input.Amount,
			transactionType,
			input.Date,
			input.Description,
			input.Notes,
		)

		if err := repos.Transactions.Create(ctx, txn); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		exceeded, err = syncBudgets(ctx, repos.Budgets, input.UserID, entity.PlanSpendAdjustments(nil, txn.Snapshot()))
		if err != nil {
			return err
		}

		result = &entity.TransactionWithCategory{Transaction: txn, Category: category}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyExceeded(ctx, uc.notifier, exceeded)

	return &CreateTransactionOutput{
		Transaction: result,
	}, nil
}
