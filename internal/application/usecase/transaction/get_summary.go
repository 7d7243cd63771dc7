package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

// GetSummaryInput represents the input for the transaction summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Range  valueobject.DateRange
}

// GetSummaryOutput holds per-type totals and the resulting balance.
type GetSummaryOutput struct {
	Income  entity.TypeTotal
	Expense entity.TypeTotal
	Balance decimal.Decimal
}

// GetSummaryUseCase aggregates the user's transactions by type.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{transactionRepo: transactionRepo}
}

// Execute performs the aggregation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	totals, err := uc.transactionRepo.SumByType(ctx, input.UserID, input.Range)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	return Summarize(totals), nil
}

// Summarize folds per-type totals into a summary. Missing types count as zero.
func Summarize(totals []entity.TypeTotal) *GetSummaryOutput {
	out := &GetSummaryOutput{
		Income:  entity.TypeTotal{Type: entity.TransactionTypeIncome, Total: decimal.Zero},
		Expense: entity.TypeTotal{Type: entity.TransactionTypeExpense, Total: decimal.Zero},
	}
	for _, t := range totals {
		switch t.Type {
		case entity.TransactionTypeIncome:
			out.Income = t
		case entity.TransactionTypeExpense:
			out.Expense = t
		}
	}
	out.Balance = out.Income.Total.Sub(out.Expense.Total)
	return out
}
