package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSnapshot is the budget-relevant view of a transaction at one point in time.
type TransactionSnapshot struct {
	Amount decimal.Decimal
	Type   TransactionType
	Date   time.Time
}

// SpendAdjustment is a signed delta to apply to budgets covering Date.
type SpendAdjustment struct {
	Delta decimal.Decimal
	Date  time.Time
}

// PlanSpendAdjustments returns the budget deltas implied by moving a transaction
// from before to after. A nil before means creation and a nil after means deletion.
// Only expense snapshots contribute, so a type change reverses or applies one side only.
// An expense that stays on the same day nets to a single delta, or none when unchanged.
func PlanSpendAdjustments(before, after *TransactionSnapshot) []SpendAdjustment {
	if before.isExpense() && after.isExpense() && TruncateToDay(before.Date).Equal(TruncateToDay(after.Date)) {
		delta := after.Amount.Sub(before.Amount)
		if delta.IsZero() {
			return nil
		}
		return []SpendAdjustment{{Delta: delta, Date: TruncateToDay(after.Date)}}
	}

	var plan []SpendAdjustment

	if before.isExpense() {
		plan = append(plan, SpendAdjustment{Delta: before.Amount.Neg(), Date: TruncateToDay(before.Date)})
	}
	if after.isExpense() {
		plan = append(plan, SpendAdjustment{Delta: after.Amount, Date: TruncateToDay(after.Date)})
	}

	return plan
}

func (s *TransactionSnapshot) isExpense() bool {
	return s != nil && s.Type == TransactionTypeExpense
}
