package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/application/usecase/transaction"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	CategoryID  string          `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        *Date           `json:"date"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	CategoryID  *string          `json:"categoryId"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type"`
	Date        *Date            `json:"date"`
	Description *string          `json:"description"`
	Notes       *string          `json:"notes"`
}

// TransactionListQuery represents the query string accepted by the transaction list.
type TransactionListQuery struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Type       string `form:"type"`
	CategoryID string `form:"categoryId"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Search     string `form:"search"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	CategoryID  string                       `json:"categoryId"`
	Amount      float64                      `json:"amount"`
	Type        string                       `json:"type"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Notes       string                       `json:"notes"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time                    `json:"createdAt"`
	UpdatedAt   time.Time                    `json:"updatedAt"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// TypeTotalResponse is the total and count for one transaction type.
type TypeTotalResponse struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// TransactionSummaryResponse represents the per-type transaction summary.
type TransactionSummaryResponse struct {
	Income  TypeTotalResponse `json:"income"`
	Expense TypeTotalResponse `json:"expense"`
	Balance float64           `json:"balance"`
}

// ToTransactionResponse converts a transaction and its optional category to a DTO.
func ToTransactionResponse(txn *entity.TransactionWithCategory) TransactionResponse {
	t := txn.Transaction
	response := TransactionResponse{
		ID:          t.ID.String(),
		CategoryID:  t.CategoryID.String(),
		Amount:      money(t.Amount),
		Type:        string(t.Type),
		Date:        formatDate(t.Date),
		Description: t.Description,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    txn.Category.ID.String(),
			Name:  txn.Category.Name,
			Type:  string(txn.Category.Type),
			Color: txn.Category.Color,
		}
	}

	return response
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []*entity.TransactionWithCategory) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

// ToTransactionListResponse converts a TransactionListResult to TransactionListResponse.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(result.Transactions),
		Pagination: PaginationResponse{
			CurrentPage:  result.Pagination.Page,
			TotalPages:   result.Pagination.TotalPages(result.Total),
			TotalItems:   result.Total,
			ItemsPerPage: result.Pagination.Limit,
		},
	}
}

// ToTransactionSummaryResponse converts a GetSummaryOutput to its DTO.
func ToTransactionSummaryResponse(output *transaction.GetSummaryOutput) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		Income:  TypeTotalResponse{Total: money(output.Income.Total), Count: output.Income.Count},
		Expense: TypeTotalResponse{Total: money(output.Expense.Total), Count: output.Expense.Count},
		Balance: money(output.Balance),
	}
}
