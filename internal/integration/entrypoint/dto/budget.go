package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/application/usecase/budget"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   *Date           `json:"startDate"`
	EndDate     *Date           `json:"endDate"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	StartDate   *Date            `json:"startDate"`
	EndDate     *Date            `json:"endDate"`
	Status      *string          `json:"status"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Amount         float64   `json:"amount"`
	SpentAmount    float64   `json:"spentAmount"`
	Status         string    `json:"status"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	ActualSpent    *float64  `json:"actualSpent,omitempty"`
	Remaining      *float64  `json:"remaining,omitempty"`
	PercentageUsed *float64  `json:"percentageUsed,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetDetailResponse is a budget with the expenses inside its window.
type BudgetDetailResponse struct {
	Budget       BudgetResponse        `json:"budget"`
	Transactions []TransactionResponse `json:"transactions"`
}

// BudgetStatusSummaryResponse aggregates the budgets sharing a status.
type BudgetStatusSummaryResponse struct {
	Status        string  `json:"status"`
	Count         int64   `json:"count"`
	TotalBudgeted float64 `json:"totalBudgeted"`
	TotalSpent    float64 `json:"totalSpent"`
}

// BudgetAnalyticsResponse represents the budget analytics response.
type BudgetAnalyticsResponse struct {
	ByStatus []BudgetStatusSummaryResponse `json:"byStatus"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID.String(),
		Name:        b.Name,
		Description: b.Description,
		Amount:      money(b.Amount),
		SpentAmount: money(b.SpentAmount),
		Status:      string(b.Status),
		StartDate:   formatDate(b.StartDate),
		EndDate:     formatDate(b.EndDate),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBudgetUsageResponse converts a budget with its read-time projection.
func ToBudgetUsageResponse(usage *entity.BudgetWithUsage) BudgetResponse {
	response := ToBudgetResponse(usage.Budget)
	actual, remaining, pct := money(usage.ActualSpent), money(usage.Remaining), money(usage.PercentageUsed)
	response.ActualSpent = &actual
	response.Remaining = &remaining
	response.PercentageUsed = &pct
	return response
}

// ToBudgetListResponse converts a ListBudgetsOutput to BudgetListResponse.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = ToBudgetUsageResponse(b)
	}
	return BudgetListResponse{Budgets: budgets}
}

// ToBudgetDetailResponse converts a GetBudgetOutput to BudgetDetailResponse.
func ToBudgetDetailResponse(output *budget.GetBudgetOutput) BudgetDetailResponse {
	return BudgetDetailResponse{
		Budget:       ToBudgetUsageResponse(output.Budget),
		Transactions: ToTransactionResponses(output.Transactions),
	}
}

// ToBudgetAnalyticsResponse converts a GetAnalyticsOutput to BudgetAnalyticsResponse.
func ToBudgetAnalyticsResponse(output *budget.GetAnalyticsOutput) BudgetAnalyticsResponse {
	groups := make([]BudgetStatusSummaryResponse, len(output.ByStatus))
	for i, s := range output.ByStatus {
		groups[i] = BudgetStatusSummaryResponse{
			Status:        string(s.Status),
			Count:         s.Count,
			TotalBudgeted: money(s.TotalBudgeted),
			TotalSpent:    money(s.TotalSpent),
		}
	}
	return BudgetAnalyticsResponse{ByStatus: groups}
}
