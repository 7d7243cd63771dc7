package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSpendAdjustments(t *testing.T) {
	expense := func(amount, date string) *TransactionSnapshot {
		return &TransactionSnapshot{Amount: dec(amount), Type: TransactionTypeExpense, Date: day(date)}
	}
	income := func(amount, date string) *TransactionSnapshot {
		return &TransactionSnapshot{Amount: dec(amount), Type: TransactionTypeIncome, Date: day(date)}
	}

	tests := []struct {
		name   string
		before *TransactionSnapshot
		after  *TransactionSnapshot
		want   []SpendAdjustment
	}{
		{
			name:  "create expense",
			after: expense("120", "2024-01-10"),
			want:  []SpendAdjustment{{Delta: dec("120"), Date: day("2024-01-10")}},
		},
		{
			name:  "create income",
			after: income("3000", "2024-01-05"),
			want:  nil,
		},
		{
			name:   "delete expense",
			before: expense("400", "2024-01-20"),
			want:   []SpendAdjustment{{Delta: dec("-400"), Date: day("2024-01-20")}},
		},
		{
			name:   "move expense date",
			before: expense("100", "2024-01-10"),
			after:  expense("100", "2024-02-10"),
			want: []SpendAdjustment{
				{Delta: dec("-100"), Date: day("2024-01-10")},
				{Delta: dec("100"), Date: day("2024-02-10")},
			},
		},
		{
			name:   "unchanged expense",
			before: expense("100", "2024-01-10"),
			after:  expense("100", "2024-01-10"),
			want:   nil,
		},
		{
			name:   "amount change on the same day nets out",
			before: expense("400", "2024-01-20"),
			after:  expense("450", "2024-01-20"),
			want:   []SpendAdjustment{{Delta: dec("50"), Date: day("2024-01-20")}},
		},
		{
			name:   "expense becomes income",
			before: expense("100", "2024-01-10"),
			after:  income("100", "2024-01-10"),
			want:   []SpendAdjustment{{Delta: dec("-100"), Date: day("2024-01-10")}},
		},
		{
			name:   "income becomes expense",
			before: income("100", "2024-01-10"),
			after:  expense("100", "2024-01-10"),
			want:   []SpendAdjustment{{Delta: dec("100"), Date: day("2024-01-10")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanSpendAdjustments(tt.before, tt.after)

			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.True(t, tt.want[i].Delta.Equal(got[i].Delta), "delta %d: want %s got %s", i, tt.want[i].Delta, got[i].Delta)
				assert.True(t, tt.want[i].Date.Equal(got[i].Date))
			}
		})
	}
}

func TestTransaction_Snapshot(t *testing.T) {
	var missing *Transaction
	assert.Nil(t, missing.Snapshot())

	txn := &Transaction{Amount: dec("9.99"), Type: TransactionTypeExpense, Date: day("2024-03-01")}
	snap := txn.Snapshot()
	require.NotNil(t, snap)
	assert.True(t, dec("9.99").Equal(snap.Amount))
	assert.Equal(t, TransactionTypeExpense, snap.Type)
}
