package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle status of a budget.
type BudgetStatus string

const (
	BudgetStatusActive    BudgetStatus = "active"
	BudgetStatusCompleted BudgetStatus = "completed"
	BudgetStatusExceeded  BudgetStatus = "exceeded"
	BudgetStatusPaused    BudgetStatus = "paused"
)

// TrackedBudgetStatuses are the statuses whose spent amount follows transaction writes.
var TrackedBudgetStatuses = []BudgetStatus{BudgetStatusActive, BudgetStatusExceeded}

// Budget is a spending cap over an inclusive date window.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Amount      decimal.Decimal
	SpentAmount decimal.Decimal
	Status      BudgetStatus
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewBudget creates a new active Budget with nothing spent.
func NewBudget(userID uuid.UUID, name, description string, amount decimal.Decimal, startDate, endDate time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Amount:      amount,
		SpentAmount: decimal.Zero,
		Status:      BudgetStatusActive,
		StartDate:   TruncateToDay(startDate),
		EndDate:     TruncateToDay(endDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Covers reports whether date falls inside the budget window, both ends inclusive.
func (b *Budget) Covers(date time.Time) bool {
	d := TruncateToDay(date)
	return !d.Before(b.StartDate) && !d.After(b.EndDate)
}

// SpendChange describes the effect of applying a delta to a budget.
type SpendChange struct {
	Previous       decimal.Decimal
	Current        decimal.Decimal
	Clamped        bool
	BecameExceeded bool
}

// ApplySpendDelta adds delta to the spent amount, never letting it drop below zero.
// The status moves to exceeded once spent reaches the amount and back to active
// when a reversal takes an exceeded budget under it again.
func (b *Budget) ApplySpendDelta(delta decimal.Decimal) SpendChange {
	change := SpendChange{Previous: b.SpentAmount}

	next := b.SpentAmount.Add(delta)
	if next.IsNegative() {
		next = decimal.Zero
		change.Clamped = true
	}
	b.SpentAmount = next
	change.Current = next

	switch {
	case next.GreaterThanOrEqual(b.Amount):
		change.BecameExceeded = b.Status != BudgetStatusExceeded
		b.Status = BudgetStatusExceeded
	case b.Status == BudgetStatusExceeded:
		b.Status = BudgetStatusActive
	}

	b.UpdatedAt = time.Now().UTC()
	return change
}

// IsTracked reports whether transaction writes adjust this budget.
func (b *Budget) IsTracked() bool {
	return b.Status == BudgetStatusActive || b.Status == BudgetStatusExceeded
}

// ResetSpending replaces the spent amount with a freshly measured total and, for
// tracked budgets, re-derives the status from it.
func (b *Budget) ResetSpending(spent decimal.Decimal) {
	if spent.IsNegative() {
		spent = decimal.Zero
	}
	b.SpentAmount = spent
	if b.IsTracked() {
		if spent.GreaterThanOrEqual(b.Amount) {
			b.Status = BudgetStatusExceeded
		} else {
			b.Status = BudgetStatusActive
		}
	}
	b.UpdatedAt = time.Now().UTC()
}

// BudgetWindowsOverlap reports whether [bStart, bEnd] intersects [aStart, aEnd].
func BudgetWindowsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	within := func(t time.Time) bool {
		return !t.Before(aStart) && !t.After(aEnd)
	}
	return within(bStart) || within(bEnd) || (!bStart.After(aStart) && !bEnd.Before(aEnd))
}

// FindOverlappingBudget returns the first candidate with the same name whose window
// overlaps [start, end], skipping excludeID.
func FindOverlappingBudget(candidates []*Budget, name string, start, end time.Time, excludeID uuid.UUID) *Budget {
	start, end = TruncateToDay(start), TruncateToDay(end)
	for _, c := range candidates {
		if c.ID == excludeID || c.Name != name {
			continue
		}
		if BudgetWindowsOverlap(c.StartDate, c.EndDate, start, end) {
			return c
		}
	}
	return nil
}

// BudgetWithUsage is a budget with its read-time spending projection.
type BudgetWithUsage struct {
	Budget         *Budget
	ActualSpent    decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed decimal.Decimal
}

// NewBudgetWithUsage derives remaining and percentage-used from actualSpent.
func NewBudgetWithUsage(b *Budget, actualSpent decimal.Decimal) *BudgetWithUsage {
	usage := &BudgetWithUsage{
		Budget:         b,
		ActualSpent:    actualSpent,
		Remaining:      b.Amount.Sub(actualSpent),
		PercentageUsed: decimal.Zero,
	}
	if b.Amount.IsPositive() {
		usage.PercentageUsed = actualSpent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return usage
}

// BudgetStatusSummary aggregates budgets sharing a status.
type BudgetStatusSummary struct {
	Status        BudgetStatus
	Count         int64
	TotalBudgeted decimal.Decimal
	TotalSpent    decimal.Decimal
}
