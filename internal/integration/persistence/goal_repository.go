package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/integration/persistence/model"
)

// goalSortColumns maps the accepted sortBy values to SQL expressions.
var goalSortColumns = map[string]string{
	"targetDate":   "target_date",
	"createdAt":    "created_at",
	"targetAmount": "target_amount",
	"name":         "name",
	"priority":     "CASE priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 ELSE 0 END",
}

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// List retrieves the user's goals filtered and ordered by filter.
// Unknown sort keys fall back to target date ascending.
func (r *goalRepository) List(ctx context.Context, userID uuid.UUID, filter entity.GoalFilter) ([]*entity.Goal, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", string(*filter.Priority))
	}

	column, ok := goalSortColumns[filter.SortBy]
	if !ok {
		column = goalSortColumns["targetDate"]
	}
	direction := "ASC"
	if strings.EqualFold(filter.Order, "desc") {
		direction = "DESC"
	}

	var goalModels []model.GoalModel
	result := query.
		Order(column + " " + direction).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// ExistsByName checks if the user has another live goal with the given name.
func (r *goalRepository) ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ? AND name = ?", userID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a goal.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// SummarizeByStatusAndPriority aggregates the user's goals by status and priority.
func (r *goalRepository) SummarizeByStatusAndPriority(ctx context.Context, userID uuid.UUID) ([]entity.GoalGroupSummary, error) {
	var rows []struct {
		Status       string
		Priority     string
		Count        int64
		TotalTarget  decimal.Decimal
		TotalCurrent decimal.Decimal
		AvgProgress  decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Select(`status, priority, COUNT(*) AS count,
			COALESCE(SUM(target_amount), 0) AS total_target,
			COALESCE(SUM(current_amount), 0) AS total_current,
			COALESCE(AVG(current_amount * 100.0 / target_amount), 0) AS avg_progress`).
		Where("user_id = ?", userID).
		Group("status, priority").
		Order("status ASC, priority ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	groups := make([]entity.GoalGroupSummary, len(rows))
	for i, row := range rows {
		groups[i] = entity.GoalGroupSummary{
			Status:       entity.GoalStatus(row.Status),
			Priority:     entity.GoalPriority(row.Priority),
			Count:        row.Count,
			TotalTarget:  row.TotalTarget.Round(2),
			TotalCurrent: row.TotalCurrent.Round(2),
			AvgProgress:  row.AvgProgress.Round(2),
		}
	}
	return groups, nil
}
