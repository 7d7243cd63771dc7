package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/usecase/transaction"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase    *transaction.ListTransactionsUseCase
	summaryUseCase *transaction.GetSummaryUseCase
	getUseCase     *transaction.GetTransactionUseCase
	createUseCase  *transaction.CreateTransactionUseCase
	updateUseCase  *transaction.UpdateTransactionUseCase
	deleteUseCase  *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	summaryUseCase *transaction.GetSummaryUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:    listUseCase,
		summaryUseCase: summaryUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var query dto.TransactionListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		handleError(ctx, domainerror.NewMalformedInputError("query", "page and limit must be integers"))
		return
	}

	txnType, err := parseTransactionType(query.Type)
	if err != nil {
		handleError(ctx, err)
		return
	}
	categoryID, err := parseOptionalUUID("categoryId", query.CategoryID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	dateRange, err := parseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		handleError(ctx, err)
		return
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID:     identity.UserID,
		Type:       txnType,
		CategoryID: categoryID,
		Range:      dateRange,
		Search:     query.Search,
		Page:       query.Page,
		Limit:      query.Limit,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Transactions retrieved successfully", dto.ToTransactionListResponse(result)))
}

// Summary handles GET /transactions/summary requests.
func (c *TransactionController) Summary(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	dateRange, err := parseDateRange(ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), transaction.GetSummaryInput{
		UserID: identity.UserID,
		Range:  dateRange,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Transaction summary retrieved successfully", dto.ToTransactionSummaryResponse(output)))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx)
	if !ok {
		return
	}

	txn, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		UserID:        identity.UserID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Transaction retrieved successfully", dto.ToTransactionResponse(txn)))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	categoryID := uuid.Nil
	if req.CategoryID != "" {
		parsed, err := uuid.Parse(req.CategoryID)
		if err != nil {
			handleError(ctx, domainerror.NewValidationError(domainerror.FieldError{
				Field: "categoryId", Message: "must be a valid UUID",
			}))
			return
		}
		categoryID = parsed
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      identity.UserID,
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        req.Date.Value(),
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Success("Transaction created successfully", dto.ToTransactionResponse(output.Transaction)))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil {
		parsed, err := parseOptionalUUID("categoryId", *req.CategoryID)
		if err != nil || parsed == nil {
			handleError(ctx, domainerror.NewValidationError(domainerror.FieldError{
				Field: "categoryId", Message: "must be a valid UUID",
			}))
			return
		}
		categoryID = parsed
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		UserID:        identity.UserID,
		TransactionID: transactionID,
		CategoryID:    categoryID,
		Amount:        req.Amount,
		Type:          req.Type,
		Date:          req.Date.TimePtr(),
		Description:   req.Description,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Transaction updated successfully", dto.ToTransactionResponse(output.Transaction)))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        identity.UserID,
		TransactionID: transactionID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Transaction deleted successfully", nil))
}
