// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single income or expense entry.
// Amount is always positive; Type carries the direction.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        TransactionType
	Date        time.Time
	Description string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	date time.Time,
	description string,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        transactionType,
		Date:        TruncateToDay(date),
		Description: description,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Snapshot captures the fields of a transaction that affect budget spending.
func (t *Transaction) Snapshot() *TransactionSnapshot {
	if t == nil {
		return nil
	}
	return &TransactionSnapshot{Amount: t.Amount, Type: t.Type, Date: t.Date}
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionFilter holds the optional list filters for transactions.
type TransactionFilter struct {
	Type       *TransactionType
	CategoryID *uuid.UUID
	Range      valueobject.DateRange
	Search     string
	Pagination valueobject.Pagination
}

// TransactionListResult represents a page of transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithCategory
	Total        int64
	Pagination   valueobject.Pagination
}

// TypeTotal is the aggregated total and count for one transaction type.
type TypeTotal struct {
	Type  TransactionType
	Total decimal.Decimal
	Count int64
}

// MonthlyTotal is the per-type total for one calendar month.
type MonthlyTotal struct {
	Year  int
	Month time.Month
	Type  TransactionType
	Total decimal.Decimal
}

// TruncateToDay returns t at midnight UTC of the same calendar day.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
