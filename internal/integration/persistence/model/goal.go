package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:varchar(500)"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate    time.Time       `gorm:"type:date;not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active'"`
	Priority      string          `gorm:"type:varchar(10);not null;default:'medium'"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    entity.TruncateToDay(m.TargetDate),
		Status:        entity.GoalStatus(m.Status),
		Priority:      entity.GoalPriority(m.Priority),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAtPtr(m.DeletedAt),
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    entity.TruncateToDay(goal.TargetDate),
		Status:        string(goal.Status),
		Priority:      string(goal.Priority),
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
		DeletedAt:     softDeleted(goal.DeletedAt),
	}
}
