package dto

import (
	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/application/usecase/dashboard"
)

// DashboardSummaryResponse holds the all-time totals shown on the dashboard.
type DashboardSummaryResponse struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
	GoalProgress  float64 `json:"goalProgress"`
}

// MonthlyDataResponse is the trailing monthly income and expense series.
type MonthlyDataResponse struct {
	Months      []string  `json:"months"`
	IncomeData  []float64 `json:"incomeData"`
	ExpenseData []float64 `json:"expenseData"`
}

// DashboardResponse represents the dashboard payload.
type DashboardResponse struct {
	Summary            DashboardSummaryResponse `json:"summary"`
	RecentTransactions []TransactionResponse    `json:"recentTransactions"`
	ActiveBudgets      int64                    `json:"activeBudgets"`
	MonthlyData        MonthlyDataResponse      `json:"monthlyData"`
}

// ToDashboardResponse converts a GetDashboardOutput to DashboardResponse.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	return DashboardResponse{
		Summary: DashboardSummaryResponse{
			TotalIncome:   money(output.Summary.TotalIncome),
			TotalExpenses: money(output.Summary.TotalExpenses),
			Balance:       money(output.Summary.Balance),
			GoalProgress:  money(output.Summary.GoalProgress),
		},
		RecentTransactions: ToTransactionResponses(output.RecentTransactions),
		ActiveBudgets:      output.ActiveBudgets,
		MonthlyData: MonthlyDataResponse{
			Months:      output.MonthlyData.Months,
			IncomeData:  moneySeries(output.MonthlyData.IncomeData),
			ExpenseData: moneySeries(output.MonthlyData.ExpenseData),
		},
	}
}

func moneySeries(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = money(v)
	}
	return out
}
