// Package dashboard assembles the per-user overview: all-time totals, recent
// activity, budget and goal counters and a six month income/expense series.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodTotalsReader sums a user's transactions over a closed date window.
type PeriodTotalsReader interface {
	TotalsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (*PeriodTotals, error)
}

type PeriodTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Count    int64
}
