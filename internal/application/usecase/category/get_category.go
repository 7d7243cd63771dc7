package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// RecentTransactionsLimit is how many transactions are returned with a single category.
const RecentTransactionsLimit = 10

// GetCategoryInput represents the input for reading one category.
type GetCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// GetCategoryOutput represents a category with its latest transactions.
type GetCategoryOutput struct {
	Category           *entity.Category
	RecentTransactions []*entity.Transaction
}

// GetCategoryUseCase handles reading a single category.
type GetCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository, transactionRepo adapter.TransactionRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the category lookup.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := findOwnedCategory(ctx, uc.categoryRepo, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	recent, err := uc.transactionRepo.FindRecentByCategory(ctx, input.UserID, category.ID, RecentTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load category transactions: %w", err)
	}

	return &GetCategoryOutput{
		Category:           category,
		RecentTransactions: recent,
	}, nil
}
