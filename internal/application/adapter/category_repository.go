// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

// CategoryFilter holds optional list filters for categories.
type CategoryFilter struct {
	Type     *entity.CategoryType
	IsActive *bool
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateBatch creates several categories in one statement.
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListByUser retrieves the user's categories with their transaction counts, ordered by type then name.
	ListByUser(ctx context.Context, userID uuid.UUID, filter CategoryFilter) ([]*entity.CategoryWithStats, error)

	// ExistsByNameAndType checks if the user has another category with the same name and type.
	ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID uuid.UUID) (bool, error)

	// CountTransactions counts live transactions referencing the category.
	CountTransactions(ctx context.Context, id uuid.UUID) (int64, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete permanently removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
