package auth

import (
	"context"
	"strings"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User    *entity.User
	Session *SessionOutput
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	sessionStore    adapter.SessionStore
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	sessionStore adapter.SessionStore,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		sessionStore:    sessionStore,
		tokenService:    tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)

	// Same error for unknown email and wrong password to prevent email enumeration
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, invalid
	}
	if !user.CanAuthenticate() {
		return nil, invalid
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalid
	}

	session, err := openSession(ctx, uc.sessionStore, uc.tokenService, user)
	if err != nil {
		return nil, err
	}

	return &LoginUserOutput{
		User:    user,
		Session: session,
	}, nil
}
