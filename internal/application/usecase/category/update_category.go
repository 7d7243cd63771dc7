package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// UpdateCategoryInput represents a partial category update. Nil fields are left unchanged.
type UpdateCategoryInput struct {
	UserID      uuid.UUID `json:"-"`
	CategoryID  uuid.UUID `json:"-"`
	Name        *string   `json:"name" validate:"omitnil,min=1,max=50"`
	Description *string   `json:"description" validate:"omitnil,max=500"`
	Type        *string   `json:"type" validate:"omitnil,oneof=income expense"`
	Color       *string   `json:"color" validate:"omitnil,hexcolor"`
	IsActive    *bool     `json:"isActive"`
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	category, err := findOwnedCategory(ctx, uc.categoryRepo, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	name, categoryType := category.Name, category.Type
	if input.Name != nil {
		name = *input.Name
	}
	if input.Type != nil {
		categoryType = entity.CategoryType(*input.Type)
	}

	if name != category.Name || categoryType != category.Type {
		if err := ensureUnique(ctx, uc.categoryRepo, input.UserID, name, categoryType, category.ID); err != nil {
			return nil, err
		}
	}

	category.Name = name
	category.Type = categoryType
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
