// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// findOwnedCategory loads a category and hides categories owned by someone else.
func findOwnedCategory(ctx context.Context, repo adapter.CategoryRepository, userID, id uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return nil, notFound()
	}
	return category, nil
}

func notFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}

func ensureUnique(ctx context.Context, repo adapter.CategoryRepository, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID uuid.UUID) error {
	exists, err := repo.ExistsByNameAndType(ctx, userID, name, categoryType, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check category uniqueness: %w", err)
	}
	if exists {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"category with this name and type already exists",
			domainerror.ErrCategoryNameExists,
		)
	}
	return nil
}
