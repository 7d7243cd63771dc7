package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

// TransactionModel is a row of the transactions table. The (user_id, date)
// index serves both the listing order and the budget window sums.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2"`
	Description string          `gorm:"type:varchar(255);not null"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Date:        entity.TruncateToDay(m.Date),
		Description: m.Description,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAtPtr(m.DeletedAt),
	}
}

// ToEntityWithCategory expects Category to be preloaded; otherwise the category is left nil.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	out := &entity.TransactionWithCategory{Transaction: m.ToEntity()}
	if m.Category != nil {
		out.Category = m.Category.ToEntity()
	}
	return out
}

func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Date:        entity.TruncateToDay(t.Date),
		Description: t.Description,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		DeletedAt:   softDeleted(t.DeletedAt),
	}
}
