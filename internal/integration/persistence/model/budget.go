package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_budgets_user_window,priority:1"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:varchar(500)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SpentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active';index"`
	StartDate   time.Time       `gorm:"type:date;not null;index:idx_budgets_user_window,priority:2"`
	EndDate     time.Time       `gorm:"type:date;not null;index:idx_budgets_user_window,priority:3"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Amount:      m.Amount,
		SpentAmount: m.SpentAmount,
		Status:      entity.BudgetStatus(m.Status),
		StartDate:   entity.TruncateToDay(m.StartDate),
		EndDate:     entity.TruncateToDay(m.EndDate),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAtPtr(m.DeletedAt),
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		Name:        budget.Name,
		Description: budget.Description,
		Amount:      budget.Amount,
		SpentAmount: budget.SpentAmount,
		Status:      string(budget.Status),
		StartDate:   entity.TruncateToDay(budget.StartDate),
		EndDate:     entity.TruncateToDay(budget.EndDate),
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
		DeletedAt:   softDeleted(budget.DeletedAt),
	}
}
