package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        domainerror.NewValidationError(domainerror.FieldError{Field: "age", Message: "must be at least 18"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VAL-010001",
		},
		{
			name:       "malformed input",
			err:        domainerror.NewMalformedInputError("id", "must be a valid UUID"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VAL-010002",
		},
		{
			name:       "duplicate email",
			err:        domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", nil),
			wantStatus: http.StatusConflict,
			wantCode:   "AUTH-010001",
		},
		{
			name:       "bad credentials",
			err:        domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid email or password", nil),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH-020001",
		},
		{
			name:       "bad confirmation",
			err:        domainerror.NewAuthError(domainerror.ErrCodeInvalidConfirmation, "confirmation must be \"DELETE\"", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "AUTH-040001",
		},
		{
			name:       "missing user",
			err:        domainerror.NewUserError(domainerror.ErrCodeUserNotFound, "user not found", nil),
			wantStatus: http.StatusNotFound,
			wantCode:   "USR-010001",
		},
		{
			name:       "duplicate category",
			err:        domainerror.NewCategoryError(domainerror.ErrCodeCategoryNameExists, "category already exists", nil),
			wantStatus: http.StatusConflict,
			wantCode:   "CAT-010002",
		},
		{
			name:       "category type mismatch",
			err:        domainerror.NewTransactionError(domainerror.ErrCodeCategoryTypeMismatch, "transaction type must match category type", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "TXN-010002",
		},
		{
			name:       "foreign category",
			err:        domainerror.NewTransactionError(domainerror.ErrCodeCategoryNotFoundForTxn, "category not found", nil),
			wantStatus: http.StatusNotFound,
			wantCode:   "TXN-010003",
		},
		{
			name:       "budget sync failure",
			err:        domainerror.NewTransactionError(domainerror.ErrCodeBudgetSyncFailed, "budget sync failed", errors.New("deadlock")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TXN-020001",
		},
		{
			name:       "budget overlap",
			err:        domainerror.NewBudgetError(domainerror.ErrCodeBudgetOverlap, "overlap", nil),
			wantStatus: http.StatusConflict,
			wantCode:   "BUD-010002",
		},
		{
			name:       "missing goal",
			err:        domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", nil),
			wantStatus: http.StatusNotFound,
			wantCode:   "GOL-010001",
		},
		{
			name:       "wrapped domain error",
			err:        fmt.Errorf("outer: %w", domainerror.NewBudgetError(domainerror.ErrCodeBudgetNotFound, "budget not found", nil)),
			wantStatus: http.StatusNotFound,
			wantCode:   "BUD-010001",
		},
		{
			name:       "unknown error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", "test")
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp dto.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Empty(t, resp.Error, "internal details stay hidden outside development")
		})
	}
}

func TestHandleError_ValidationListsFields(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	handleError(c, domainerror.NewValidationError(
		domainerror.FieldError{Field: "email", Message: "must be a valid email address"},
		domainerror.FieldError{Field: "age", Message: "must be at least 18"},
	))

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Message)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "email", resp.Errors[0].Field)
	assert.Equal(t, "age", resp.Errors[1].Field)
}

func TestHandleError_ExposesDetailsInDevelopment(t *testing.T) {
	t.Setenv("ENV", "development")
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handleError(c, errors.New("connection refused"))

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "connection refused", resp.Error)
}

func TestPathID(t *testing.T) {
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		if _, ok := pathID(c); ok {
			c.Status(http.StatusNoContent)
		}
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/3f1c0e4e-6a7b-4a55-9d7c-2d8f8b9e1a10", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		dbErr      error
		sessionErr error
		wantStatus int
		wantState  string
	}{
		{"all connected", nil, nil, http.StatusOK, "ok"},
		{"database down", errors.New("connection reset"), nil, http.StatusServiceUnavailable, "degraded"},
		{"session store down", nil, errors.New("dial tcp: refused"), http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthController(
				func(context.Context) error { return tt.dbErr },
				func(context.Context) error { return tt.sessionErr },
			)
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			h.Check(c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantState, resp.Status)
		})
	}
}
