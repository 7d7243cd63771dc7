package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

type stubTotals struct {
	mu      sync.Mutex
	calls   []time.Time
	byMonth map[time.Month]*PeriodTotals
	err     error
}

func (s *stubTotals) TotalsBetween(_ context.Context, _ uuid.UUID, start, _ time.Time) (*PeriodTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, start)
	if s.err != nil {
		return nil, s.err
	}
	if summary, ok := s.byMonth[start.Month()]; ok {
		return summary, nil
	}
	return &PeriodTotals{Income: decimal.Zero, Expenses: decimal.Zero}, nil
}

type stubTransactionRepo struct {
	adapter.TransactionRepository
	totals []entity.TypeTotal
	recent []*entity.TransactionWithCategory
}

func (s *stubTransactionRepo) SumByType(context.Context, uuid.UUID, valueobject.DateRange) ([]entity.TypeTotal, error) {
	return s.totals, nil
}

func (s *stubTransactionRepo) FindRecent(_ context.Context, _ uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	if len(s.recent) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

type stubBudgetRepo struct {
	adapter.BudgetRepository
	active int64
	asOf   time.Time
}

func (s *stubBudgetRepo) CountActive(_ context.Context, _ uuid.UUID, asOf time.Time) (int64, error) {
	s.asOf = asOf
	return s.active, nil
}

type stubGoalRepo struct {
	adapter.GoalRepository
	goals []*entity.Goal
}

func (s *stubGoalRepo) List(context.Context, uuid.UUID, entity.GoalFilter) ([]*entity.Goal, error) {
	return s.goals, nil
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestGetDashboard_EmptyAccount(t *testing.T) {
	uc := NewGetDashboardUseCase(&stubTotals{}, &stubTransactionRepo{}, &stubBudgetRepo{}, &stubGoalRepo{})
	uc.SetClock(fixedClock)

	out, err := uc.Execute(context.Background(), GetDashboardInput{UserID: uuid.New()})
	require.NoError(t, err)

	assert.True(t, out.Summary.TotalIncome.IsZero())
	assert.True(t, out.Summary.Balance.IsZero())
	assert.True(t, out.Summary.GoalProgress.IsZero())
	assert.Empty(t, out.RecentTransactions)
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, out.MonthlyData.Months)
	assert.Len(t, out.MonthlyData.IncomeData, MonthlySeriesLength)
	assert.Len(t, out.MonthlyData.ExpenseData, MonthlySeriesLength)
}

func TestGetDashboard_AssemblesEveryQuery(t *testing.T) {
	userID := uuid.New()
	totals := &stubTotals{byMonth: map[time.Month]*PeriodTotals{
		time.January: {Income: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(300)},
		time.March:   {Income: decimal.Zero, Expenses: decimal.NewFromInt(200)},
	}}
	txnRepo := &stubTransactionRepo{
		totals: []entity.TypeTotal{
			{Type: entity.TransactionTypeIncome, Total: decimal.NewFromInt(1000), Count: 1},
			{Type: entity.TransactionTypeExpense, Total: decimal.NewFromInt(500), Count: 2},
		},
	}
	for i := 0; i < 7; i++ {
		txnRepo.recent = append(txnRepo.recent, &entity.TransactionWithCategory{Transaction: &entity.Transaction{ID: uuid.New()}})
	}
	budgetRepo := &stubBudgetRepo{active: 2}
	farAway := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	goalRepo := &stubGoalRepo{goals: []*entity.Goal{
		entity.NewGoal(userID, "Trip", "", decimal.NewFromInt(1000), decimal.NewFromInt(400), farAway, ""),
		entity.NewGoal(userID, "Bike", "", decimal.NewFromInt(500), decimal.NewFromInt(500), farAway, ""),
	}}

	uc := NewGetDashboardUseCase(totals, txnRepo, budgetRepo, goalRepo)
	uc.SetClock(fixedClock)

	out, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	require.NoError(t, err)

	assert.Equal(t, "1000", out.Summary.TotalIncome.String())
	assert.Equal(t, "500", out.Summary.TotalExpenses.String())
	assert.Equal(t, "500", out.Summary.Balance.String())
	assert.Equal(t, "70", out.Summary.GoalProgress.String())
	assert.Len(t, out.RecentTransactions, RecentTransactionsLimit)
	assert.Equal(t, int64(2), out.ActiveBudgets)
	assert.True(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC).Equal(budgetRepo.asOf))

	assert.Equal(t, "1000", out.MonthlyData.IncomeData[3].String())
	assert.Equal(t, "300", out.MonthlyData.ExpenseData[3].String())
	assert.Equal(t, "200", out.MonthlyData.ExpenseData[5].String())
	assert.Len(t, totals.calls, MonthlySeriesLength)
}

func TestGetDashboard_PropagatesFailures(t *testing.T) {
	boom := errors.New("connection reset")
	uc := NewGetDashboardUseCase(&stubTotals{err: boom}, &stubTransactionRepo{}, &stubBudgetRepo{}, &stubGoalRepo{})
	uc.SetClock(fixedClock)

	_, err := uc.Execute(context.Background(), GetDashboardInput{UserID: uuid.New()})

	assert.ErrorIs(t, err, boom)
}

func TestTrailingMonthPeriods_CrossesYearBoundary(t *testing.T) {
	periods := TrailingMonthPeriods(time.Date(2024, time.February, 29, 23, 0, 0, 0, time.UTC), 3)

	require.Len(t, periods, 3)
	assert.Equal(t, "Dec", periods[0].Label)
	assert.Equal(t, 2023, periods[0].Start.Year())
	assert.Equal(t, "2023-12-31", periods[0].End.Format(time.DateOnly))
	assert.Equal(t, "2024-02-29", periods[2].End.Format(time.DateOnly))
}
