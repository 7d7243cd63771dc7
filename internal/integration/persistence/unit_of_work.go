package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

// unitOfWork implements adapter.UnitOfWork on top of gorm transactions.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work bound to db.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do runs fn inside a database transaction with repositories bound to it.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos adapter.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, adapter.Repositories{
			Users:        NewUserRepository(tx),
			Categories:   NewCategoryRepository(tx),
			Transactions: NewTransactionRepository(tx),
			Budgets:      NewBudgetRepository(tx),
		})
	})
}
