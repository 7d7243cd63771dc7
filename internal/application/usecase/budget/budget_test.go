package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// fakeBudgetRepo keeps budgets in memory. Methods not overridden panic through the nil interface.
type fakeBudgetRepo struct {
	adapter.BudgetRepository
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo(budgets ...*entity.Budget) *fakeBudgetRepo {
	repo := &fakeBudgetRepo{budgets: map[uuid.UUID]*entity.Budget{}}
	for _, b := range budgets {
		repo.budgets[b.ID] = b
	}
	return repo
}

func (r *fakeBudgetRepo) Create(_ context.Context, b *entity.Budget) error {
	r.budgets[b.ID] = b
	return nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, b *entity.Budget) error {
	r.budgets[b.ID] = b
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	b, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBudgetRepo) FindByName(_ context.Context, userID uuid.UUID, name string) ([]*entity.Budget, error) {
	var found []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.Name == name {
			found = append(found, b)
		}
	}
	return found, nil
}

// fakeTransactionRepo answers window sums from a fixed list of expenses.
type fakeTransactionRepo struct {
	adapter.TransactionRepository
	expenses []*entity.Transaction
}

func (r *fakeTransactionRepo) SumExpensesInWindow(_ context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, txn := range r.expenses {
		if txn.UserID == userID && !txn.Date.Before(start) && !txn.Date.After(end) {
			total = total.Add(txn.Amount)
		}
	}
	return total, nil
}

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(userID uuid.UUID, amount int64, date time.Time) *entity.Transaction {
	return entity.NewTransaction(userID, uuid.New(), decimal.NewFromInt(amount), entity.TransactionTypeExpense, date, "entry", "")
}

func budgetCode(t *testing.T, err error) domainerror.BudgetErrorCode {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	require.ErrorAs(t, err, &budgetErr)
	return budgetErr.Code
}

func TestCreateBudget_CountsExistingExpenses(t *testing.T) {
	userID := uuid.New()
	txns := &fakeTransactionRepo{expenses: []*entity.Transaction{
		expense(userID, 300, day(time.January, 5)),
		expense(userID, 250, day(time.January, 31)),
		expense(userID, 999, day(time.February, 1)),
	}}
	uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), txns)

	out, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:    userID,
		Name:      "  Groceries ",
		Amount:    decimal.NewFromInt(500),
		StartDate: day(time.January, 1),
		EndDate:   day(time.January, 31),
	})
	require.NoError(t, err)

	assert.Equal(t, "Groceries", out.Budget.Name)
	assert.Equal(t, "550", out.Budget.SpentAmount.String())
	assert.Equal(t, entity.BudgetStatusExceeded, out.Budget.Status)
}

func TestCreateBudget_RejectsOverlapWithSameName(t *testing.T) {
	userID := uuid.New()
	existing := entity.NewBudget(userID, "Groceries", "", decimal.NewFromInt(500), day(time.January, 1), day(time.January, 31))
	uc := NewCreateBudgetUseCase(newFakeBudgetRepo(existing), &fakeTransactionRepo{})

	tests := []struct {
		name    string
		budget  string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"overlapping window", "Groceries", day(time.January, 15), day(time.February, 15), true},
		{"adjacent window", "Groceries", day(time.February, 1), day(time.February, 29), false},
		{"different name", "Dining", day(time.January, 15), day(time.February, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreateBudgetInput{
				UserID:    userID,
				Name:      tt.budget,
				Amount:    decimal.NewFromInt(100),
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			if tt.wantErr {
				assert.Equal(t, domainerror.ErrCodeBudgetOverlap, budgetCode(t, err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateBudget_EndDateMustFollowStartDate(t *testing.T) {
	uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), &fakeTransactionRepo{})

	_, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:    uuid.New(),
		Name:      "Groceries",
		Amount:    decimal.NewFromInt(100),
		StartDate: day(time.March, 1),
		EndDate:   day(time.March, 1),
	})

	var verr *domainerror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endDate", verr.Fields[0].Field)
}

func TestUpdateBudget(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	t.Run("moving the window remeasures spending", func(t *testing.T) {
		b := entity.NewBudget(userID, "Groceries", "", decimal.NewFromInt(500), day(time.January, 1), day(time.January, 31))
		b.ResetSpending(decimal.NewFromInt(100))
		txns := &fakeTransactionRepo{expenses: []*entity.Transaction{
			expense(userID, 100, day(time.January, 10)),
			expense(userID, 40, day(time.February, 10)),
		}}
		uc := NewUpdateBudgetUseCase(newFakeBudgetRepo(b), txns)

		out, err := uc.Execute(ctx, UpdateBudgetInput{
			UserID:    userID,
			BudgetID:  b.ID,
			StartDate: ptr(day(time.February, 1)),
			EndDate:   ptr(day(time.February, 29)),
		})
		require.NoError(t, err)

		assert.Equal(t, "40", out.Budget.SpentAmount.String())
		assert.Equal(t, entity.BudgetStatusActive, out.Budget.Status)
	})

	t.Run("merged window must stay valid", func(t *testing.T) {
		b := entity.NewBudget(userID, "Groceries", "", decimal.NewFromInt(500), day(time.January, 1), day(time.January, 31))
		uc := NewUpdateBudgetUseCase(newFakeBudgetRepo(b), &fakeTransactionRepo{})

		_, err := uc.Execute(ctx, UpdateBudgetInput{
			UserID:    userID,
			BudgetID:  b.ID,
			StartDate: ptr(day(time.February, 15)),
		})

		assert.ErrorIs(t, err, domainerror.ErrValidation)
	})

	t.Run("explicit status wins", func(t *testing.T) {
		b := entity.NewBudget(userID, "Groceries", "", decimal.NewFromInt(500), day(time.January, 1), day(time.January, 31))
		uc := NewUpdateBudgetUseCase(newFakeBudgetRepo(b), &fakeTransactionRepo{})

		out, err := uc.Execute(ctx, UpdateBudgetInput{
			UserID:   userID,
			BudgetID: b.ID,
			Amount:   ptr(decimal.NewFromInt(50)),
			Status:   ptr(string(entity.BudgetStatusPaused)),
		})
		require.NoError(t, err)

		assert.Equal(t, entity.BudgetStatusPaused, out.Budget.Status)
	})

	t.Run("resuming a paused budget counts expenses recorded meanwhile", func(t *testing.T) {
		tests := []struct {
			name       string
			from       entity.BudgetStatus
			expenses   []int64
			wantSpent  string
			wantStatus entity.BudgetStatus
		}{
			{"paused below the amount", entity.BudgetStatusPaused, []int64{120}, "120", entity.BudgetStatusActive},
			{"paused past the amount", entity.BudgetStatusPaused, []int64{120, 400}, "520", entity.BudgetStatusExceeded},
			{"completed", entity.BudgetStatusCompleted, []int64{80}, "80", entity.BudgetStatusActive},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := entity.NewBudget(userID, "Groceries", "", decimal.NewFromInt(500), day(time.January, 1), day(time.January, 31))
				b.Status = tt.from
				txns := &fakeTransactionRepo{}
				for _, amount := range tt.expenses {
					txns.expenses = append(txns.expenses, expense(userID, amount, day(time.January, 15)))
				}
				uc := NewUpdateBudgetUseCase(newFakeBudgetRepo(b), txns)

				out, err := uc.Execute(ctx, UpdateBudgetInput{
					UserID:   userID,
					BudgetID: b.ID,
					Status:   ptr(string(entity.BudgetStatusActive)),
				})
				require.NoError(t, err)

				assert.Equal(t, tt.wantSpent, out.Budget.SpentAmount.String())
				assert.Equal(t, tt.wantStatus, out.Budget.Status)
			})
		}
	})

	t.Run("other users' budgets are not found", func(t *testing.T) {
		b := entity.NewBudget(userID, "Groceries", "", decimal.NewFromInt(500), day(time.January, 1), day(time.January, 31))
		uc := NewUpdateBudgetUseCase(newFakeBudgetRepo(b), &fakeTransactionRepo{})

		_, err := uc.Execute(ctx, UpdateBudgetInput{UserID: uuid.New(), BudgetID: b.ID, Name: ptr("Food")})

		assert.Equal(t, domainerror.ErrCodeBudgetNotFound, budgetCode(t, err))
	})
}

func ptr[T any](v T) *T {
	return &v
}
