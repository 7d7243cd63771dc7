package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personal-finance/tracker/internal/application/usecase/goal"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	listUseCase      *goal.ListGoalsUseCase
	analyticsUseCase *goal.GetAnalyticsUseCase
	getUseCase       *goal.GetGoalUseCase
	createUseCase    *goal.CreateGoalUseCase
	updateUseCase    *goal.UpdateGoalUseCase
	progressUseCase  *goal.UpdateProgressUseCase
	deleteUseCase    *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	analyticsUseCase *goal.GetAnalyticsUseCase,
	getUseCase *goal.GetGoalUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	progressUseCase *goal.UpdateProgressUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:      listUseCase,
		analyticsUseCase: analyticsUseCase,
		getUseCase:       getUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		progressUseCase:  progressUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var query dto.GoalListQuery
	if !bindQuery(ctx, &query) {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		UserID:   identity.UserID,
		Status:   query.Status,
		Priority: query.Priority,
		SortBy:   query.SortBy,
		Order:    query.Order,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Goals retrieved successfully", dto.ToGoalListResponse(output)))
}

// Analytics handles GET /goals/analytics requests.
func (c *GoalController) Analytics(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), goal.GetAnalyticsInput{UserID: identity.UserID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Goal analytics retrieved successfully", dto.ToGoalAnalyticsResponse(output)))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx)
	if !ok {
		return
	}

	g, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{UserID: identity.UserID, GoalID: goalID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Goal retrieved successfully", dto.ToGoalResponse(g)))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:        identity.UserID,
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate.Value(),
		Priority:      req.Priority,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Success("Goal created successfully", dto.ToGoalResponse(output.Goal)))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		UserID:        identity.UserID,
		GoalID:        goalID,
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate.TimePtr(),
		Status:        req.Status,
		Priority:      req.Priority,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Goal updated successfully", dto.ToGoalResponse(output.Goal)))
}

// UpdateProgress handles PATCH /goals/:id/progress requests.
func (c *GoalController) UpdateProgress(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalProgressRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), goal.UpdateProgressInput{
		UserID: identity.UserID,
		GoalID: goalID,
		Amount: req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Goal progress updated successfully", dto.ToGoalResponse(output.Goal)))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{UserID: identity.UserID, GoalID: goalID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Goal deleted successfully", nil))
}
