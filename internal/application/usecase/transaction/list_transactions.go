package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	Range      valueobject.DateRange
	Search     string
	Page       int
	Limit      int
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*entity.TransactionListResult, error) {
	filter := entity.TransactionFilter{
		Type:       input.Type,
		CategoryID: input.CategoryID,
		Range:      input.Range,
		Search:     strings.TrimSpace(input.Search),
		Pagination: valueobject.NewPagination(input.Page, input.Limit),
	}

	result, err := uc.transactionRepo.List(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return result, nil
}
