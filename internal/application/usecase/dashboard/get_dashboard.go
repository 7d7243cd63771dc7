package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

// RecentTransactionsLimit is how many transactions the dashboard lists.
const RecentTransactionsLimit = 5

// GetDashboardInput represents the input for the dashboard.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// Summary holds the all-time totals shown on the dashboard.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	GoalProgress  decimal.Decimal
}

// MonthlySeries holds three parallel sequences in chronological order.
type MonthlySeries struct {
	Months      []string
	IncomeData  []decimal.Decimal
	ExpenseData []decimal.Decimal
}

// GetDashboardOutput represents the dashboard payload.
type GetDashboardOutput struct {
	Summary            Summary
	RecentTransactions []*entity.TransactionWithCategory
	ActiveBudgets      int64
	MonthlyData        MonthlySeries
}

// GetDashboardUseCase assembles the dashboard from independent read-only queries.
type GetDashboardUseCase struct {
	totals          PeriodTotalsReader
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.GoalRepository
	now             func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	totals PeriodTotalsReader,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		totals:          totals,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
		now:             time.Now,
	}
}

// SetClock replaces the clock that anchors the monthly series.
func (uc *GetDashboardUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// Execute runs the dashboard queries concurrently. The first failing query cancels the rest.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	now := uc.now().UTC()
	periods := TrailingMonthPeriods(now, MonthlySeriesLength)

	var (
		totals        []entity.TypeTotal
		recent        []*entity.TransactionWithCategory
		activeBudgets int64
		goals         []*entity.Goal
		monthly       = make([]*PeriodTotals, len(periods))
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals, err = uc.transactionRepo.SumByType(gctx, input.UserID, valueobject.DateRange{})
		if err != nil {
			return fmt.Errorf("failed to load totals: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		recent, err = uc.transactionRepo.FindRecent(gctx, input.UserID, RecentTransactionsLimit)
		if err != nil {
			return fmt.Errorf("failed to load recent transactions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		activeBudgets, err = uc.budgetRepo.CountActive(gctx, input.UserID, entity.TruncateToDay(now))
		if err != nil {
			return fmt.Errorf("failed to count active budgets: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		goals, err = uc.goalRepo.List(gctx, input.UserID, entity.GoalFilter{})
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		return nil
	})

	for i, p := range periods {
		i, p := i, p
		g.Go(func() error {
			month, err := uc.totals.TotalsBetween(gctx, input.UserID, p.Start, p.End)
			if err != nil {
				return fmt.Errorf("failed to load %s totals: %w", p.Label, err)
			}
			monthly[i] = month
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	typeTotals := summarizeTypes(totals)

	out := &GetDashboardOutput{
		Summary: Summary{
			TotalIncome:   typeTotals[entity.TransactionTypeIncome],
			TotalExpenses: typeTotals[entity.TransactionTypeExpense],
			GoalProgress:  averageProgress(goals, now),
		},
		RecentTransactions: recent,
		ActiveBudgets:      activeBudgets,
		MonthlyData: MonthlySeries{
			Months:      make([]string, len(periods)),
			IncomeData:  make([]decimal.Decimal, len(periods)),
			ExpenseData: make([]decimal.Decimal, len(periods)),
		},
	}
	out.Summary.Balance = out.Summary.TotalIncome.Sub(out.Summary.TotalExpenses)

	for i, p := range periods {
		out.MonthlyData.Months[i] = p.Label
		out.MonthlyData.IncomeData[i] = monthly[i].Income
		out.MonthlyData.ExpenseData[i] = monthly[i].Expenses
	}

	return out, nil
}

func summarizeTypes(totals []entity.TypeTotal) map[entity.TransactionType]decimal.Decimal {
	out := map[entity.TransactionType]decimal.Decimal{
		entity.TransactionTypeIncome:  decimal.Zero,
		entity.TransactionTypeExpense: decimal.Zero,
	}
	for _, t := range totals {
		out[t.Type] = t.Total
	}
	return out
}

// averageProgress is the mean progress percentage over goals, zero when there are none.
func averageProgress(goals []*entity.Goal, now time.Time) decimal.Decimal {
	if len(goals) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, g := range goals {
		sum = sum.Add(entity.NewGoalWithProgress(g, now).ProgressPercentage)
	}
	return sum.Div(decimal.NewFromInt(int64(len(goals)))).Round(2)
}
