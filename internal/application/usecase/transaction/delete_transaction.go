package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase soft-deletes a transaction and reverses its budget contribution.
type DeleteTransactionUseCase struct {
	unitOfWork adapter.UnitOfWork
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(unitOfWork adapter.UnitOfWork) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		unitOfWork: unitOfWork,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	return uc.unitOfWork.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		txn, err := findOwnedTransaction(ctx, repos.Transactions, input.UserID, input.TransactionID)
		if err != nil {
			return err
		}

		if err := repos.Transactions.Delete(ctx, txn.ID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}

		_, err = syncBudgets(ctx, repos.Budgets, input.UserID, entity.PlanSpendAdjustments(txn.Snapshot(), nil))
		return err
	})
}
