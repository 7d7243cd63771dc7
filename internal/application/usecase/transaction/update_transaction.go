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

// UpdateTransactionInput represents a partial transaction update. Nil fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID        `json:"-"`
	TransactionID uuid.UUID        `json:"-"`
	CategoryID    *uuid.UUID       `json:"categoryId"`
	Amount        *decimal.Decimal `json:"amount" validate:"omitnil,gte=0.01"`
	Type          *string          `json:"type" validate:"omitnil,oneof=income expense"`
	Date          *time.Time       `json:"date"`
	Description   *string          `json:"description" validate:"omitnil,min=1,max=255"`
	Notes         *string          `json:"notes" validate:"omitnil,max=1000"`
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// UpdateTransactionUseCase amends a transaction, moving its budget contribution from
// the old amount, date and type to the new ones in the same unit of work.
type UpdateTransactionUseCase struct {
	unitOfWork adapter.UnitOfWork
	notifier   adapter.BudgetAlertNotifier
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(unitOfWork adapter.UnitOfWork, notifier adapter.BudgetAlertNotifier) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		unitOfWork: unitOfWork,
		notifier:   notifier,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		input.Description = &trimmed
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var (
		result   *entity.TransactionWithCategory
		exceeded []*entity.Budget
	)

	err := uc.unitOfWork.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		txn, err := findOwnedTransaction(ctx, repos.Transactions, input.UserID, input.TransactionID)
		if err != nil {
			return err
		}

		before := txn.Snapshot()

		if input.CategoryID != nil {
			txn.CategoryID = *input.CategoryID
		}
		if input.Amount != nil {
			txn.Amount = *input.Amount
		}
		if input.Type != nil {
			txn.Type = entity.TransactionType(*input.Type)
		}
		if input.Date != nil {
			txn.Date = entity.TruncateToDay(*input.Date)
		}
		if input.Description != nil {
			txn.Description = *input.Description
		}
		if input.Notes != nil {
			txn.Notes = *input.Notes
		}
		txn.UpdatedAt = time.Now().UTC()

		category, err := findMatchingCategory(ctx, repos.Categories, input.UserID, txn.CategoryID, txn.Type)
		if err != nil {
			return err
		}

		if err := repos.Transactions.Update(ctx, txn); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		exceeded, err = syncBudgets(ctx, repos.Budgets, input.UserID, entity.PlanSpendAdjustments(before, txn.Snapshot()))
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

	return &UpdateTransactionOutput{
		Transaction: result,
	}, nil
}
