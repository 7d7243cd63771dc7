package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100,fullname"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128,strongpassword"`
	Sex      string `json:"sex" validate:"required,oneof=male female other"`
	Age      int    `json:"age" validate:"required,gte=18,lte=120"`
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User    *entity.User
	Session *SessionOutput
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	unitOfWork      adapter.UnitOfWork
	passwordService adapter.PasswordService
	sessionStore    adapter.SessionStore
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	unitOfWork adapter.UnitOfWork,
	passwordService adapter.PasswordService,
	sessionStore adapter.SessionStore,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		unitOfWork:      unitOfWork,
		passwordService: passwordService,
		sessionStore:    sessionStore,
		tokenService:    tokenService,
	}
}

// Execute registers the user, seeds their default categories and opens a session.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	// Not transactional: two concurrent registrations can both pass this check,
	// in which case the unique index rejects the second insert.
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.FullName, input.Email, passwordHash, entity.Sex(input.Sex), input.Age)

	err = uc.unitOfWork.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := repos.Categories.CreateBatch(ctx, entity.DefaultCategoriesFor(user.ID)); err != nil {
			return fmt.Errorf("failed to seed default categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	session, err := openSession(ctx, uc.sessionStore, uc.tokenService, user)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "User registered", "user_id", user.ID)

	return &RegisterUserOutput{
		User:    user,
		Session: session,
	}, nil
}
