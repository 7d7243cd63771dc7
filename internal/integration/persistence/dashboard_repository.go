package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/application/usecase/dashboard"
	"github.com/personal-finance/tracker/internal/domain/entity"
	"github.com/personal-finance/tracker/internal/integration/persistence/model"
)

type periodTotalsRepository struct {
	db *gorm.DB
}

func NewPeriodTotalsRepository(db *gorm.DB) dashboard.PeriodTotalsReader {
	return &periodTotalsRepository{db: db}
}

// TotalsBetween folds both transaction types into one scan so each month of
// the dashboard series costs a single query.
func (r *periodTotalsRepository) TotalsBetween(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) (*dashboard.PeriodTotals, error) {
	var row struct {
		Income   decimal.Decimal
		Expenses decimal.Decimal
		Count    int64
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expenses, "+
				"COUNT(*) AS count",
			entity.TransactionTypeIncome, entity.TransactionTypeExpense,
		).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, entity.TruncateToDay(start), entity.TruncateToDay(end)).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions between %s and %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), err)
	}

	return &dashboard.PeriodTotals{
		Income:   row.Income.Round(2),
		Expenses: row.Expenses.Round(2),
		Count:    row.Count,
	}, nil
}
