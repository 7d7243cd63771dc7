package auth

import (
	"context"
	"fmt"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	SessionID string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	sessionStore adapter.SessionStore
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(sessionStore adapter.SessionStore) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		sessionStore: sessionStore,
	}
}

// Execute destroys the caller's session.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if err := uc.sessionStore.Delete(ctx, input.SessionID); err != nil {
		return nil, fmt.Errorf("failed to destroy session: %w", err)
	}

	return &LogoutUserOutput{
		Message: "Logout successful",
	}, nil
}
