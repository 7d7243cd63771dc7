package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates several categories in one statement.
func (r *categoryRepository) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	models := make([]*model.CategoryModel, len(categories))
	for i, c := range categories {
		models[i] = model.CategoryFromEntity(c)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// ListByUser retrieves the user's categories with the number of live transactions in each.
func (r *categoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter adapter.CategoryFilter) ([]*entity.CategoryWithStats, error) {
	var rows []struct {
		model.CategoryModel
		TransactionCount int64 `gorm:"column:transaction_count"`
	}

	query := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.*, COUNT(transactions.id) AS transaction_count").
		Joins("LEFT JOIN transactions ON transactions.category_id = categories.id AND transactions.deleted_at IS NULL").
		Where("categories.user_id = ?", userID)

	if filter.Type != nil {
		query = query.Where("categories.type = ?", string(*filter.Type))
	}
	if filter.IsActive != nil {
		query = query.Where("categories.is_active = ?", *filter.IsActive)
	}

	result := query.
		Group("categories.id").
		Order("categories.type ASC, categories.name ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.CategoryWithStats, len(rows))
	for i := range rows {
		categories[i] = &entity.CategoryWithStats{
			Category:         rows[i].CategoryModel.ToEntity(),
			TransactionCount: rows[i].TransactionCount,
		}
	}
	return categories, nil
}

// ExistsByNameAndType checks if the user has another category with the same name and type.
func (r *categoryRepository) ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND name = ? AND type = ?", userID, name, string(categoryType))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountTransactions counts live transactions referencing the category.
func (r *categoryRepository) CountTransactions(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category_id = ?", id).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}
