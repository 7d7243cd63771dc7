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

// GetTransactionInput represents the input for reading one transaction.
type GetTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// GetTransactionUseCase reads a single transaction with its category.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute performs the transaction lookup.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*entity.TransactionWithCategory, error) {
	result, err := uc.transactionRepo.FindByIDWithCategory(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, transactionNotFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if result.Transaction.UserID != input.UserID {
		return nil, transactionNotFound()
	}
	return result, nil
}
