// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/domain/entity"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a live transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithCategory retrieves a live transaction and its category.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves a filtered page of the user's transactions, newest first.
	List(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) (*entity.TransactionListResult, error)

	// FindRecent retrieves the user's latest transactions with their categories.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error)

	// FindRecentByCategory retrieves the latest transactions recorded against a category.
	FindRecentByCategory(ctx context.Context, userID, categoryID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// FindExpensesInWindow retrieves the user's expense transactions dated within [start, end].
	FindExpensesInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*entity.TransactionWithCategory, error)

	// SumExpensesInWindow sums the user's expense transactions dated within [start, end].
	SumExpensesInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// SumByType aggregates the user's transactions by type, optionally limited to a date range.
	SumByType(ctx context.Context, userID uuid.UUID, dateRange valueobject.DateRange) ([]entity.TypeTotal, error)
}
