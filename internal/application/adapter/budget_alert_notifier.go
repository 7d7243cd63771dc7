package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetAlert describes a budget that has just reached its amount.
type BudgetAlert struct {
	UserID      uuid.UUID
	BudgetID    uuid.UUID
	BudgetName  string
	Amount      decimal.Decimal
	SpentAmount decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	OccurredAt  time.Time
}

// BudgetAlertNotifier delivers budget-exceeded alerts after the triggering write commits.
type BudgetAlertNotifier interface {
	NotifyBudgetExceeded(ctx context.Context, alert BudgetAlert) error
}
