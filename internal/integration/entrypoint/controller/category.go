package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/personal-finance/tracker/internal/application/usecase/category"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	getUseCase    *category.GetCategoryUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	getUseCase *category.GetCategoryUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	input := category.ListCategoriesInput{UserID: identity.UserID}

	if typeParam := ctx.Query("type"); typeParam != "" {
		categoryType := entity.CategoryType(typeParam)
		if categoryType != entity.CategoryTypeIncome && categoryType != entity.CategoryTypeExpense {
			handleError(ctx, domainerror.NewValidationError(domainerror.FieldError{
				Field: "type", Message: "must be one of: income, expense",
			}))
			return
		}
		input.Type = &categoryType
	}

	if activeParam := ctx.Query("isActive"); activeParam != "" {
		isActive, err := strconv.ParseBool(activeParam)
		if err != nil {
			handleError(ctx, domainerror.NewValidationError(domainerror.FieldError{
				Field: "isActive", Message: "must be true or false",
			}))
			return
		}
		input.IsActive = &isActive
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Categories retrieved successfully", dto.ToCategoryListResponse(output)))
}

// Get handles GET /categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	categoryID, ok := pathID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), category.GetCategoryInput{
		UserID:     identity.UserID,
		CategoryID: categoryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Category retrieved successfully", dto.ToCategoryDetailResponse(output)))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:      identity.UserID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Color:       req.Color,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Success("Category created successfully", dto.ToCategoryResponse(output.Category)))
}

// Update handles PUT /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	categoryID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		UserID:      identity.UserID,
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Category updated successfully", dto.ToCategoryResponse(output.Category)))
}

// Delete handles DELETE /categories/:id requests. A category still referenced by
// transactions is deactivated instead of removed.
func (c *CategoryController) Delete(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	categoryID, ok := pathID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID:     identity.UserID,
		CategoryID: categoryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	message := "Category deleted successfully"
	if output.Deactivated {
		message = "Category has transactions and was deactivated"
	}
	ctx.JSON(http.StatusOK, dto.Success(message, dto.CategoryDeleteResponse{
		Deactivated:      output.Deactivated,
		TransactionCount: output.TransactionCount,
	}))
}
