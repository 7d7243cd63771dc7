package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personal-finance/tracker/internal/application/usecase/budget"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// budgetAnalyticsQuery is the optional month selector for budget analytics.
type budgetAnalyticsQuery struct {
	Year  *int `form:"year"`
	Month *int `form:"month"`
}

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase      *budget.ListBudgetsUseCase
	analyticsUseCase *budget.GetAnalyticsUseCase
	getUseCase       *budget.GetBudgetUseCase
	createUseCase    *budget.CreateBudgetUseCase
	updateUseCase    *budget.UpdateBudgetUseCase
	deleteUseCase    *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	analyticsUseCase *budget.GetAnalyticsUseCase,
	getUseCase *budget.GetBudgetUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:      listUseCase,
		analyticsUseCase: analyticsUseCase,
		getUseCase:       getUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	input := budget.ListBudgetsInput{UserID: identity.UserID}
	if statusParam := ctx.Query("status"); statusParam != "" {
		status := entity.BudgetStatus(statusParam)
		switch status {
		case entity.BudgetStatusActive, entity.BudgetStatusCompleted, entity.BudgetStatusExceeded, entity.BudgetStatusPaused:
			input.Status = &status
		default:
			handleError(ctx, domainerror.NewValidationError(domainerror.FieldError{
				Field: "status", Message: "must be one of: active, completed, exceeded, paused",
			}))
			return
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Budgets retrieved successfully", dto.ToBudgetListResponse(output)))
}

// Analytics handles GET /budgets/analytics requests.
func (c *BudgetController) Analytics(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var query budgetAnalyticsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		handleError(ctx, domainerror.NewMalformedInputError("query", "year and month must be integers"))
		return
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), budget.GetAnalyticsInput{
		UserID: identity.UserID,
		Year:   query.Year,
		Month:  query.Month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Budget analytics retrieved successfully", dto.ToBudgetAnalyticsResponse(output)))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		UserID:   identity.UserID,
		BudgetID: budgetID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Budget retrieved successfully", dto.ToBudgetDetailResponse(output)))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:      identity.UserID,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		StartDate:   req.StartDate.Value(),
		EndDate:     req.EndDate.Value(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Success("Budget created successfully", dto.ToBudgetResponse(output.Budget)))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		UserID:      identity.UserID,
		BudgetID:    budgetID,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		StartDate:   req.StartDate.TimePtr(),
		EndDate:     req.EndDate.TimePtr(),
		Status:      req.Status,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Budget updated successfully", dto.ToBudgetResponse(output.Budget)))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   identity.UserID,
		BudgetID: budgetID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Budget deleted successfully", nil))
}
