package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/application/usecase/goal"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *Date           `json:"targetDate"`
	Priority      string          `json:"priority"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	TargetDate    *Date            `json:"targetDate"`
	Status        *string          `json:"status"`
	Priority      *string          `json:"priority"`
}

// UpdateGoalProgressRequest represents the request body for a progress change.
type UpdateGoalProgressRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalListQuery represents the query string accepted by the goal list.
type GoalListQuery struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	SortBy   string `form:"sortBy"`
	Order    string `form:"order"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	TargetAmount       float64   `json:"targetAmount"`
	CurrentAmount      float64   `json:"currentAmount"`
	TargetDate         string    `json:"targetDate"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	ProgressPercentage float64   `json:"progressPercentage"`
	RemainingAmount    float64   `json:"remainingAmount"`
	DaysRemaining      int       `json:"daysRemaining"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalGroupResponse aggregates goals sharing a status and priority.
type GoalGroupResponse struct {
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	Count        int64   `json:"count"`
	TotalTarget  float64 `json:"totalTarget"`
	TotalCurrent float64 `json:"totalCurrent"`
	AvgProgress  float64 `json:"avgProgress"`
}

// GoalAnalyticsResponse represents the goal analytics response.
type GoalAnalyticsResponse struct {
	Groups []GoalGroupResponse `json:"groups"`
}

// ToGoalResponse converts a goal with its progress projection to a GoalResponse DTO.
func ToGoalResponse(gp *entity.GoalWithProgress) GoalResponse {
	g := gp.Goal
	return GoalResponse{
		ID:                 g.ID.String(),
		Name:               g.Name,
		Description:        g.Description,
		TargetAmount:       money(g.TargetAmount),
		CurrentAmount:      money(g.CurrentAmount),
		TargetDate:         formatDate(g.TargetDate),
		Status:             string(g.Status),
		Priority:           string(g.Priority),
		ProgressPercentage: money(gp.ProgressPercentage),
		RemainingAmount:    money(gp.RemainingAmount),
		DaysRemaining:      gp.DaysRemaining,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

// ToGoalListResponse converts a ListGoalsOutput to GoalListResponse.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: goals}
}

// ToGoalAnalyticsResponse converts a GetAnalyticsOutput to GoalAnalyticsResponse.
func ToGoalAnalyticsResponse(output *goal.GetAnalyticsOutput) GoalAnalyticsResponse {
	groups := make([]GoalGroupResponse, len(output.Groups))
	for i, s := range output.Groups {
		groups[i] = GoalGroupResponse{
			Status:       string(s.Status),
			Priority:     string(s.Priority),
			Count:        s.Count,
			TotalTarget:  money(s.TotalTarget),
			TotalCurrent: money(s.TotalCurrent),
			AvgProgress:  money(s.AvgProgress),
		}
	}
	return GoalAnalyticsResponse{Groups: groups}
}
