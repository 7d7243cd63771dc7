package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/domain/entity"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a live budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// Update updates every mutable budget field.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete soft-deletes a budget.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser retrieves the user's budgets ordered by start date, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, status *entity.BudgetStatus) ([]*entity.Budget, error)

	// FindByName retrieves the user's live budgets sharing a name.
	FindByName(ctx context.Context, userID uuid.UUID, name string) ([]*entity.Budget, error)

	// FindTrackedCovering retrieves the user's active or exceeded budgets whose window contains date.
	FindTrackedCovering(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Budget, error)

	// UpdateSpending persists only the spent amount and status of a budget.
	UpdateSpending(ctx context.Context, budget *entity.Budget) error

	// SummarizeByStatus aggregates the user's budgets by status, optionally limited to
	// budgets whose window overlaps the given range.
	SummarizeByStatus(ctx context.Context, userID uuid.UUID, overlapping valueobject.DateRange) ([]entity.BudgetStatusSummary, error)

	// CountActive counts active budgets that have not ended before asOf.
	CountActive(ctx context.Context, userID uuid.UUID, asOf time.Time) (int64, error)
}
