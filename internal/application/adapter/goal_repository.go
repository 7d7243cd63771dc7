// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a live goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// List retrieves the user's goals filtered and ordered by filter.
	List(ctx context.Context, userID uuid.UUID, filter entity.GoalFilter) ([]*entity.Goal, error)

	// ExistsByName checks if the user has another live goal with the given name.
	ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete soft-deletes a goal.
	Delete(ctx context.Context, id uuid.UUID) error

	// SummarizeByStatusAndPriority aggregates the user's goals by status and priority.
	SummarizeByStatusAndPriority(ctx context.Context, userID uuid.UUID) ([]entity.GoalGroupSummary, error)
}
