package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

func transactionNotFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

// findOwnedTransaction loads a transaction and hides transactions owned by someone else.
func findOwnedTransaction(ctx context.Context, repo adapter.TransactionRepository, userID, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, transactionNotFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if txn.UserID != userID {
		return nil, transactionNotFound()
	}
	return txn, nil
}

// findMatchingCategory loads the user's category and checks it accepts transactionType.
func findMatchingCategory(
	ctx context.Context,
	repo adapter.CategoryRepository,
	userID, categoryID uuid.UUID,
	transactionType entity.TransactionType,
) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, categoryID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if err != nil || category.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryNotFoundForTxn,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if string(category.Type) != string(transactionType) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			"transaction type must match category type",
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return category, nil
}
