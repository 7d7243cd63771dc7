package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID      uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required,min=1,max=50"`
	Description string    `json:"description" validate:"max=500"`
	Type        string    `json:"type" validate:"required,oneof=income expense"`
	Color       string    `json:"color" validate:"omitempty,hexcolor"`
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	categoryType := entity.CategoryType(input.Type)
	if err := ensureUnique(ctx, uc.categoryRepo, input.UserID, input.Name, categoryType, uuid.Nil); err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.UserID, input.Name, input.Description, categoryType, input.Color)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
