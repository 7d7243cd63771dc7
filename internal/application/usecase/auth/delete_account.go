package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID       uuid.UUID `json:"-"`
	SessionID    string    `json:"-"`
	Password     string    `json:"password" validate:"required"`
	Confirmation string    `json:"confirmation"`
}

// DeleteConfirmation is the phrase a client may send to confirm account deletion.
const DeleteConfirmation = "DELETE"

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	sessionStore    adapter.SessionStore
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	sessionStore adapter.SessionStore,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		sessionStore:    sessionStore,
	}
}

// Execute soft-deletes the account after re-checking the password and ends the current session.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Confirmation != "" && input.Confirmation != DeleteConfirmation {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidConfirmation,
			fmt.Sprintf("confirmation must be %q", DeleteConfirmation),
			nil,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(domainerror.ErrCodeUserNotFound, "user not found", err)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	// Other sessions of this user are rejected by the session gate on their next request.
	if input.SessionID != "" {
		_ = uc.sessionStore.Delete(ctx, input.SessionID)
	}

	return &DeleteAccountOutput{
		Success: true,
	}, nil
}
