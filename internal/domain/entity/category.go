// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#007bff"

// Category groups transactions of a single type for one user.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Type        CategoryType
	Color       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new active Category entity.
// An empty color falls back to DefaultCategoryColor.
func NewCategory(userID uuid.UUID, name, description string, categoryType CategoryType, color string) *Category {
	now := time.Now().UTC()
	if color == "" {
		color = DefaultCategoryColor
	}

	return &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Type:        categoryType,
		Color:       color,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CategoryWithStats represents a category with its transaction count.
type CategoryWithStats struct {
	Category         *Category
	TransactionCount int64
}

type defaultCategory struct {
	Name        string
	Description string
	Type        CategoryType
	Color       string
}

var defaultCategories = []defaultCategory{
	{"Salary", "Monthly salary and wages", CategoryTypeIncome, "#28a745"},
	{"Freelance", "Freelance and contract work", CategoryTypeIncome, "#17a2b8"},
	{"Investment", "Investment returns and dividends", CategoryTypeIncome, "#ffc107"},
	{"Business", "Business income", CategoryTypeIncome, "#6f42c1"},
	{"Other Income", "Other sources of income", CategoryTypeIncome, "#20c997"},
	{"Food & Dining", "Restaurants, groceries, and food delivery", CategoryTypeExpense, "#dc3545"},
	{"Transportation", "Gas, public transport, car maintenance", CategoryTypeExpense, "#fd7e14"},
	{"Housing", "Rent, mortgage, property taxes", CategoryTypeExpense, "#6c757d"},
	{"Entertainment", "Movies, games, hobbies", CategoryTypeExpense, "#e83e8c"},
	{"Healthcare", "Medical expenses, insurance, pharmacy", CategoryTypeExpense, "#28a745"},
	{"Shopping", "Clothing, electronics, general shopping", CategoryTypeExpense, "#007bff"},
	{"Education", "Courses, books, tuition", CategoryTypeExpense, "#17a2b8"},
	{"Bills & Utilities", "Electricity, water, internet, phone", CategoryTypeExpense, "#ffc107"},
	{"Insurance", "Life, health, car insurance", CategoryTypeExpense, "#6f42c1"},
	{"Other Expenses", "Miscellaneous expenses", CategoryTypeExpense, "#6c757d"},
}

// DefaultCategoriesFor builds the starter category set seeded for a new user.
func DefaultCategoriesFor(userID uuid.UUID) []*Category {
	categories := make([]*Category, 0, len(defaultCategories))
	for _, d := range defaultCategories {
		categories = append(categories, NewCategory(userID, d.Name, d.Description, d.Type, d.Color))
	}
	return categories
}
