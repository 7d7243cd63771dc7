package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
	"github.com/personal-finance/tracker/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Omit("Category", "User").Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDWithCategory retrieves a transaction with its category by ID.
func (r *transactionRepository) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithCategory(), nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Omit("Category", "User").Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// List retrieves transactions based on filter criteria with pagination.
func (r *transactionRepository) List(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) (*entity.TransactionListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("user_id = ?", userID)
	query = applyDateRange(query, "date", filter.Range)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(description) LIKE ? OR LOWER(notes) LIKE ?)", searchPattern, searchPattern)
	}

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	pagination := filter.Pagination
	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Order("date DESC, created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.TransactionListResult{
		Transactions: withCategories(transactionModels),
		Total:        total,
		Pagination:   pagination,
	}, nil
}

// FindRecent retrieves the user's latest transactions with their categories.
func (r *transactionRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return withCategories(transactionModels), nil
}

// FindRecentByCategory retrieves the latest transactions recorded against a category.
func (r *transactionRepository) FindRecentByCategory(ctx context.Context, userID, categoryID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// FindExpensesInWindow retrieves the user's expenses dated within [start, end].
func (r *transactionRepository) FindExpensesInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	result := r.expensesInWindow(ctx, userID, start, end).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return withCategories(transactionModels), nil
}

// SumExpensesInWindow sums the user's expenses dated within [start, end].
func (r *transactionRepository) SumExpensesInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.expensesInWindow(ctx, userID, start, end).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total.Round(2), nil
}

// SumByType aggregates the user's transactions by type.
func (r *transactionRepository) SumByType(ctx context.Context, userID uuid.UUID, dateRange valueobject.DateRange) ([]entity.TypeTotal, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
		Count int64
	}

	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("user_id = ?", userID)
	query = applyDateRange(query, "date", dateRange)

	err := query.
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]entity.TypeTotal, len(rows))
	for i, row := range rows {
		totals[i] = entity.TypeTotal{
			Type:  entity.TransactionType(row.Type),
			Total: row.Total.Round(2),
			Count: row.Count,
		}
	}
	return totals, nil
}

func (r *transactionRepository) expensesInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ? AND type = ?", userID, string(entity.TransactionTypeExpense)).
		Where("date >= ? AND date <= ?", entity.TruncateToDay(start), entity.TruncateToDay(end))
}

// applyDateRange restricts column to the inclusive bounds that are set.
func applyDateRange(query *gorm.DB, column string, dateRange valueobject.DateRange) *gorm.DB {
	if dateRange.Start != nil {
		query = query.Where(column+" >= ?", entity.TruncateToDay(*dateRange.Start))
	}
	if dateRange.End != nil {
		query = query.Where(column+" <= ?", entity.TruncateToDay(*dateRange.End))
	}
	return query
}

func withCategories(models []model.TransactionModel) []*entity.TransactionWithCategory {
	out := make([]*entity.TransactionWithCategory, len(models))
	for i := range models {
		out[i] = models[i].ToEntityWithCategory()
	}
	return out
}
