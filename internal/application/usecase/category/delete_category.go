package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryOutput reports whether the category was removed or only deactivated.
type DeleteCategoryOutput struct {
	Deactivated      bool
	TransactionCount int64
}

// DeleteCategoryUseCase removes unused categories and deactivates referenced ones.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := findOwnedCategory(ctx, uc.categoryRepo, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	count, err := uc.categoryRepo.CountTransactions(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count category transactions: %w", err)
	}

	if count > 0 {
		category.IsActive = false
		category.UpdatedAt = time.Now().UTC()
		if err := uc.categoryRepo.Update(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to deactivate category: %w", err)
		}
		return &DeleteCategoryOutput{Deactivated: true, TransactionCount: count}, nil
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{}, nil
}
