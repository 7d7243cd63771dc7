package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle status of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// GoalPriority ranks goals against each other.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Goal represents a savings target in the Finance Tracker system.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Status        GoalStatus
	Priority      GoalPriority
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, name, description string, targetAmount, currentAmount decimal.Decimal, targetDate time.Time, priority GoalPriority) *Goal {
	now := time.Now().UTC()
	if priority == "" {
		priority = GoalPriorityMedium
	}

	g := &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    TruncateToDay(targetDate),
		Status:        GoalStatusActive,
		Priority:      priority,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	g.CompleteIfReached()
	return g
}

// CompleteIfReached marks the goal completed when the current amount has reached
// the target. It returns true when the status changed.
func (g *Goal) CompleteIfReached() bool {
	if g.Status == GoalStatusCompleted || g.CurrentAmount.LessThan(g.TargetAmount) {
		return false
	}
	g.Status = GoalStatusCompleted
	return true
}

// AddProgress adds amount to the current amount, flooring at zero.
func (g *Goal) AddProgress(amount decimal.Decimal) {
	next := g.CurrentAmount.Add(amount)
	if next.IsNegative() {
		next = decimal.Zero
	}
	g.CurrentAmount = next
	g.UpdatedAt = time.Now().UTC()
	g.CompleteIfReached()
}

// GoalWithProgress is a goal with its read-time progress projection.
type GoalWithProgress struct {
	Goal               *Goal
	ProgressPercentage decimal.Decimal
	RemainingAmount    decimal.Decimal
	DaysRemaining      int
}

// NewGoalWithProgress derives progress fields relative to today.
func NewGoalWithProgress(g *Goal, today time.Time) *GoalWithProgress {
	progress := decimal.Zero
	if g.TargetAmount.IsPositive() {
		progress = g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &GoalWithProgress{
		Goal:               g,
		ProgressPercentage: progress,
		RemainingAmount:    g.TargetAmount.Sub(g.CurrentAmount),
		DaysRemaining:      DaysBetween(TruncateToDay(today), g.TargetDate),
	}
}

// DaysBetween returns the number of calendar days from -> to, negative if to is earlier.
func DaysBetween(from, to time.Time) int {
	return int(TruncateToDay(to).Sub(TruncateToDay(from)).Hours() / 24)
}

// GoalFilter holds list filters and ordering for goals.
type GoalFilter struct {
	Status   *GoalStatus
	Priority *GoalPriority
	SortBy   string
	Order    string
}

// GoalGroupSummary aggregates goals sharing a status and priority.
type GoalGroupSummary struct {
	Status       GoalStatus
	Priority     GoalPriority
	Count        int64
	TotalTarget  decimal.Decimal
	TotalCurrent decimal.Decimal
	AvgProgress  decimal.Decimal
}
