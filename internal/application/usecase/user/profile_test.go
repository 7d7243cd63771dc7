package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

type fakeUserRepo struct {
	adapter.UserRepository
	users     map[uuid.UUID]*entity.User
	updateErr error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.users[u.ID] = u
	return nil
}

func userCode(t *testing.T, err error) domainerror.UserErrorCode {
	t.Helper()
	var userErr *domainerror.UserError
	require.ErrorAs(t, err, &userErr)
	return userErr.Code
}

func ptr[T any](v T) *T {
	return &v
}

func ana() *entity.User {
	return entity.NewUser("Ana Silva", "ana@example.com", "hash", entity.SexFemale, 30)
}

func TestGetProfile(t *testing.T) {
	u := ana()
	uc := NewGetProfileUseCase(newFakeUserRepo(u))

	out, err := uc.Execute(context.Background(), GetProfileInput{UserID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.User.Email)

	_, err = uc.Execute(context.Background(), GetProfileInput{UserID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeUserNotFound, userCode(t, err))
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("only provided fields change", func(t *testing.T) {
		u := ana()
		repo := newFakeUserRepo(u)

		out, err := NewUpdateProfileUseCase(repo).Execute(ctx, UpdateProfileInput{UserID: u.ID, Age: ptr(31)})
		require.NoError(t, err)

		assert.Equal(t, 31, out.User.Age)
		assert.Equal(t, "Ana Silva", out.User.FullName)
		assert.Equal(t, entity.SexFemale, out.User.Sex)
		assert.Equal(t, 31, repo.users[u.ID].Age)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		u := ana()

		out, err := NewUpdateProfileUseCase(newFakeUserRepo(u)).Execute(ctx, UpdateProfileInput{
			UserID:   u.ID,
			FullName: ptr("  Ana Maria Silva "),
			Sex:      ptr("other"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Ana Maria Silva", out.User.FullName)
		assert.Equal(t, entity.SexOther, out.User.Sex)
	})

	t.Run("rule violations leave the profile untouched", func(t *testing.T) {
		u := ana()
		repo := newFakeUserRepo(u)

		_, err := NewUpdateProfileUseCase(repo).Execute(ctx, UpdateProfileInput{UserID: u.ID, Age: ptr(17)})

		assert.ErrorIs(t, err, domainerror.ErrValidation)
		assert.Equal(t, 30, repo.users[u.ID].Age)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := NewUpdateProfileUseCase(newFakeUserRepo()).Execute(ctx, UpdateProfileInput{UserID: uuid.New(), Age: ptr(40)})

		assert.Equal(t, domainerror.ErrCodeUserNotFound, userCode(t, err))
	})

	t.Run("storage failure", func(t *testing.T) {
		u := ana()
		repo := newFakeUserRepo(u)
		repo.updateErr = errors.New("connection reset")

		_, err := NewUpdateProfileUseCase(repo).Execute(ctx, UpdateProfileInput{UserID: u.ID, Age: ptr(40)})

		assert.Equal(t, domainerror.ErrCodeUserUpdateFailed, userCode(t, err))
	})
}
