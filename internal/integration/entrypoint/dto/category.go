package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/application/usecase/category"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Color       string `json:"color"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Type             string    `json:"type"`
	Color            string    `json:"color"`
	IsActive         bool      `json:"isActive"`
	TransactionCount *int64    `json:"transactionCount,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryDetailResponse is a category with its most recent transactions.
type CategoryDetailResponse struct {
	Category           CategoryResponse      `json:"category"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// CategoryDeleteResponse reports how a category delete was carried out.
type CategoryDeleteResponse struct {
	Deactivated      bool  `json:"deactivated"`
	TransactionCount int64 `json:"transactionCount"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID.String(),
		Name:        cat.Name,
		Description: cat.Description,
		Type:        string(cat.Type),
		Color:       cat.Color,
		IsActive:    cat.IsActive,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories with their transaction counts.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		count := c.TransactionCount
		categories[i] = ToCategoryResponse(c.Category)
		categories[i].TransactionCount = &count
	}
	return CategoryListResponse{Categories: categories}
}

// ToCategoryDetailResponse converts a GetCategoryOutput to a CategoryDetailResponse.
func ToCategoryDetailResponse(output *category.GetCategoryOutput) CategoryDetailResponse {
	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, t := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(&entity.TransactionWithCategory{Transaction: t})
	}
	return CategoryDetailResponse{
		Category:           ToCategoryResponse(output.Category),
		RecentTransactions: recent,
	}
}

func money(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
