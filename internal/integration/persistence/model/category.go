package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// Categories are removed with a hard delete, so there is no DeletedAt column.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name_type,priority:1"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_user_name_type,priority:2"`
	Description string    `gorm:"type:varchar(500)"`
	Type        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_user_name_type,priority:3"`
	Color       string    `gorm:"type:varchar(7);not null;default:'#007bff'"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Type:        entity.CategoryType(m.Type),
		Color:       m.Color,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:          category.ID,
		UserID:      category.UserID,
		Name:        category.Name,
		Description: category.Description,
		Type:        string(category.Type),
		Color:       category.Color,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
