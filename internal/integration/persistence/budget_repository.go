package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
	"github.com/personal-finance/tracker/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// Update updates every mutable budget field.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Save(model.BudgetFromEntity(budget)).Error
}

// Delete soft-deletes a budget.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// ListByUser retrieves the user's budgets, newest window first.
func (r *budgetRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *entity.BudgetStatus) ([]*entity.Budget, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var budgetModels []model.BudgetModel
	if err := query.Order("start_date DESC, created_at DESC").Find(&budgetModels).Error; err != nil {
		return nil, err
	}
	return toBudgets(budgetModels), nil
}

// FindByName retrieves the user's live budgets sharing a name.
func (r *budgetRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		Find(&budgetModels).Error
	if err != nil {
		return nil, err
	}
	return toBudgets(budgetModels), nil
}

// FindTrackedCovering retrieves the user's active or exceeded budgets whose window contains date.
// Rows are locked for update on databases that support it.
func (r *budgetRepository) FindTrackedCovering(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Budget, error) {
	statuses := make([]string, len(entity.TrackedBudgetStatuses))
	for i, s := range entity.TrackedBudgetStatuses {
		statuses[i] = string(s)
	}
	day := entity.TruncateToDay(date)

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, statuses).
		Where("start_date <= ? AND end_date >= ?", day, day).
		Order("start_date ASC")
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var budgetModels []model.BudgetModel
	if err := query.Find(&budgetModels).Error; err != nil {
		return nil, err
	}
	return toBudgets(budgetModels), nil
}

// UpdateSpending persists only the spent amount and status of a budget.
func (r *budgetRepository) UpdateSpending(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", budget.ID).
		Updates(map[string]any{
			"spent_amount": budget.SpentAmount,
			"status":       string(budget.Status),
			"updated_at":   budget.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// SummarizeByStatus aggregates the user's budgets by status. When overlapping has
// both bounds, only budgets whose window intersects it are counted.
func (r *budgetRepository) SummarizeByStatus(ctx context.Context, userID uuid.UUID, overlapping valueobject.DateRange) ([]entity.BudgetStatusSummary, error) {
	var rows []struct {
		Status        string
		Count         int64
		TotalBudgeted decimal.Decimal
		TotalSpent    decimal.Decimal
	}

	query := r.db.WithContext(ctx).Model(&model.BudgetModel{}).Where("user_id = ?", userID)
	if overlapping.Start != nil && overlapping.End != nil {
		query = query.Where("start_date <= ? AND end_date >= ?",
			entity.TruncateToDay(*overlapping.End), entity.TruncateToDay(*overlapping.Start))
	}

	err := query.
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_budgeted, COALESCE(SUM(spent_amount), 0) AS total_spent").
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.BudgetStatusSummary, len(rows))
	for i, row := range rows {
		summaries[i] = entity.BudgetStatusSummary{
			Status:        entity.BudgetStatus(row.Status),
			Count:         row.Count,
			TotalBudgeted: row.TotalBudgeted.Round(2),
			TotalSpent:    row.TotalSpent.Round(2),
		}
	}
	return summaries, nil
}

// CountActive counts active budgets that have not ended before asOf.
func (r *budgetRepository) CountActive(ctx context.Context, userID uuid.UUID, asOf time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("user_id = ? AND status = ? AND end_date >= ?", userID, string(entity.BudgetStatusActive), entity.TruncateToDay(asOf)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func toBudgets(models []model.BudgetModel) []*entity.Budget {
	budgets := make([]*entity.Budget, len(models))
	for i := range models {
		budgets[i] = models[i].ToEntity()
	}
	return budgets
}
