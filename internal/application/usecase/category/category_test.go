package category

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// fakeCategoryRepo keeps categories in memory and reports a fixed transaction count per category.
type fakeCategoryRepo struct {
	adapter.CategoryRepository
	categories map[uuid.UUID]*entity.Category
	usage      map[uuid.UUID]int64
	deleted    []uuid.UUID
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{
		categories: map[uuid.UUID]*entity.Category{},
		usage:      map[uuid.UUID]int64{},
	}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepo) ExistsByNameAndType(_ context.Context, userID uuid.UUID, name string, t entity.CategoryType, excludeID uuid.UUID) (bool, error) {
	for _, c := range r.categories {
		if c.UserID == userID && c.Name == name && c.Type == t && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) CountTransactions(_ context.Context, id uuid.UUID) (int64, error) {
	return r.usage[id], nil
}

func categoryCode(t *testing.T, err error) domainerror.CategoryErrorCode {
	t.Helper()
	var categoryErr *domainerror.CategoryError
	require.ErrorAs(t, err, &categoryErr)
	return categoryErr.Code
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateCategory(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()
	existing := entity.NewCategory(userID, "Groceries", "", entity.CategoryTypeExpense, "")

	t.Run("trims the name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		out, err := uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "  Pets  ", Type: "expense", Color: "#A1B2C3"})
		require.NoError(t, err)

		assert.Equal(t, "Pets", out.Category.Name)
		assert.True(t, out.Category.IsActive)
	})

	t.Run("same name and type conflicts", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo(existing))

		_, err := uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Groceries", Type: "expense"})

		assert.Equal(t, domainerror.ErrCodeCategoryNameExists, categoryCode(t, err))
	})

	t.Run("same name with the other type is allowed", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo(existing))

		_, err := uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Groceries", Type: "income"})

		assert.NoError(t, err)
	})

	t.Run("another user may reuse the name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo(existing))

		_, err := uc.Execute(ctx, CreateCategoryInput{UserID: uuid.New(), Name: "Groceries", Type: "expense"})

		assert.NoError(t, err)
	})

	t.Run("invalid color", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Pets", Type: "expense", Color: "red"})

		assert.ErrorIs(t, err, domainerror.ErrValidation)
	})
}

func TestUpdateCategory(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		c := entity.NewCategory(userID, "Groceries", "weekly market", entity.CategoryTypeExpense, "#00FF00")
		repo := newFakeCategoryRepo(c)

		out, err := NewUpdateCategoryUseCase(repo).Execute(ctx, UpdateCategoryInput{
			UserID:     userID,
			CategoryID: c.ID,
			Color:      ptr("#FF0000"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Groceries", out.Category.Name)
		assert.Equal(t, "weekly market", out.Category.Description)
		assert.Equal(t, "#FF0000", repo.categories[c.ID].Color)
	})

	t.Run("renaming onto a sibling conflicts", func(t *testing.T) {
		c := entity.NewCategory(userID, "Groceries", "", entity.CategoryTypeExpense, "")
		sibling := entity.NewCategory(userID, "Food", "", entity.CategoryTypeExpense, "")

		_, err := NewUpdateCategoryUseCase(newFakeCategoryRepo(c, sibling)).Execute(ctx, UpdateCategoryInput{
			UserID:     userID,
			CategoryID: c.ID,
			Name:       ptr("Food"),
		})

		assert.Equal(t, domainerror.ErrCodeCategoryNameExists, categoryCode(t, err))
	})

	t.Run("other users' categories are not found", func(t *testing.T) {
		c := entity.NewCategory(userID, "Groceries", "", entity.CategoryTypeExpense, "")

		_, err := NewUpdateCategoryUseCase(newFakeCategoryRepo(c)).Execute(ctx, UpdateCategoryInput{
			UserID:     uuid.New(),
			CategoryID: c.ID,
			Name:       ptr("Mine"),
		})

		assert.Equal(t, domainerror.ErrCodeCategoryNotFound, categoryCode(t, err))
	})
}

func TestDeleteCategory(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	t.Run("unused category is removed", func(t *testing.T) {
		c := entity.NewCategory(userID, "Pets", "", entity.CategoryTypeExpense, "")
		repo := newFakeCategoryRepo(c)

		out, err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{UserID: userID, CategoryID: c.ID})
		require.NoError(t, err)

		assert.False(t, out.Deactivated)
		assert.Equal(t, []uuid.UUID{c.ID}, repo.deleted)
		assert.NotContains(t, repo.categories, c.ID)
	})

	t.Run("referenced category is deactivated", func(t *testing.T) {
		c := entity.NewCategory(userID, "Groceries", "", entity.CategoryTypeExpense, "")
		repo := newFakeCategoryRepo(c)
		repo.usage[c.ID] = 3

		out, err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{UserID: userID, CategoryID: c.ID})
		require.NoError(t, err)

		assert.True(t, out.Deactivated)
		assert.Equal(t, int64(3), out.TransactionCount)
		assert.Empty(t, repo.deleted)
		require.Contains(t, repo.categories, c.ID)
		assert.False(t, repo.categories[c.ID].IsActive)
	})

	t.Run("other users' categories are not found", func(t *testing.T) {
		c := entity.NewCategory(userID, "Pets", "", entity.CategoryTypeExpense, "")
		repo := newFakeCategoryRepo(c)

		_, err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{UserID: uuid.New(), CategoryID: c.ID})

		assert.Equal(t, domainerror.ErrCodeCategoryNotFound, categoryCode(t, err))
		assert.Empty(t, repo.deleted)
	})
}
