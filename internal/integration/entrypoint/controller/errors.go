package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/infra/logger"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/middleware"
)

// handleError maps a use-case error to an HTTP status and writes the error envelope.
func handleError(ctx *gin.Context, err error) {
	var (
		valErr  *domainerror.ValidationError
		authErr *domainerror.AuthError
		userErr *domainerror.UserError
		catErr  *domainerror.CategoryError
		txnErr  *domainerror.TransactionError
		budErr  *domainerror.BudgetError
		goalErr *domainerror.GoalError
	)

	switch {
	case errors.As(err, &valErr):
		ctx.JSON(http.StatusBadRequest, dto.ValidationFailure(valErr))
	case errors.As(err, &authErr):
		ctx.JSON(statusForAuthError(authErr.Code), dto.Failure(string(authErr.Code), authErr.Message))
	case errors.As(err, &userErr):
		ctx.JSON(statusForUserError(userErr.Code), dto.Failure(string(userErr.Code), userErr.Message))
	case errors.As(err, &catErr):
		ctx.JSON(statusForCategoryError(catErr.Code), dto.Failure(string(catErr.Code), catErr.Message))
	case errors.As(err, &txnErr):
		status := statusForTransactionError(txnErr.Code)
		if status == http.StatusInternalServerError {
			internalError(ctx, string(txnErr.Code), err)
			return
		}
		ctx.JSON(status, dto.Failure(string(txnErr.Code), txnErr.Message))
	case errors.As(err, &budErr):
		ctx.JSON(statusForBudgetError(budErr.Code), dto.Failure(string(budErr.Code), budErr.Message))
	case errors.As(err, &goalErr):
		ctx.JSON(statusForGoalError(goalErr.Code), dto.Failure(string(goalErr.Code), goalErr.Message))
	default:
		internalError(ctx, "", err)
	}
}

// internalError logs err and writes a 500. The error text is exposed only in development.
func internalError(ctx *gin.Context, code string, err error) {
	logger.FromContext(ctx.Request.Context()).Error("Request failed",
		slog.String(logger.FieldError, err.Error()))

	response := dto.Failure(code, "Internal server error")
	if os.Getenv("ENV") == "development" {
		response.Error = err.Error()
	}
	ctx.JSON(http.StatusInternalServerError, response)
}

func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeSessionNotFound,
		domainerror.ErrCodeUserInactive:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeInvalidConfirmation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func statusForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound, domainerror.ErrCodeCategoryNotFoundForTxn:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryTypeMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetOverlap:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func statusForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalNameExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// requireIdentity returns the caller's identity, writing a 401 when there is none.
func requireIdentity(ctx *gin.Context) (entity.Identity, bool) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Failure(string(domainerror.ErrCodeMissingToken), "Authentication required"))
		return entity.Identity{}, false
	}
	return identity, true
}

// bindJSON decodes the request body into req, writing a 400 when it is malformed.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		handleError(ctx, domainerror.NewMalformedInputError("body", "Invalid request body"))
		return false
	}
	return true
}

// pathID parses the :id path parameter, writing a 400 when it is not a UUID.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleError(ctx, domainerror.NewMalformedInputError("id", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// bindQuery decodes the query string into req, writing a 400 when it is malformed.
func bindQuery(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindQuery(req); err != nil {
		handleError(ctx, domainerror.NewMalformedInputError("query", "Invalid query parameters"))
		return false
	}
	return true
}
