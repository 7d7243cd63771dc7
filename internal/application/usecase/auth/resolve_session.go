package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// ResolveSessionInput carries the raw token presented by the client.
type ResolveSessionInput struct {
	Token string
}

// ResolveSessionOutput is the identity established for the request.
type ResolveSessionOutput struct {
	Identity entity.Identity
	User     *entity.User
}

// ResolveSessionUseCase turns a session token into a request identity, re-reading
// the user on every call so deactivation and profile edits take effect immediately.
type ResolveSessionUseCase struct {
	userRepo     adapter.UserRepository
	sessionStore adapter.SessionStore
	tokenService adapter.TokenService
}

// NewResolveSessionUseCase creates a new ResolveSessionUseCase instance.
func NewResolveSessionUseCase(
	userRepo adapter.UserRepository,
	sessionStore adapter.SessionStore,
	tokenService adapter.TokenService,
) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{
		userRepo:     userRepo,
		sessionStore: sessionStore,
		tokenService: tokenService,
	}
}

// Execute resolves the identity behind input.Token.
func (uc *ResolveSessionUseCase) Execute(ctx context.Context, input ResolveSessionInput) (*ResolveSessionOutput, error) {
	if input.Token == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "authentication required", nil)
	}

	sessionID, err := uc.tokenService.ParseSessionToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid session token", domainerror.ErrInvalidToken)
	}

	session, err := uc.sessionStore.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSessionNotFound) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeSessionNotFound, "session expired or invalid", err)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, session.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if err != nil || !user.CanAuthenticate() {
		if delErr := uc.sessionStore.Delete(ctx, session.ID); delErr != nil {
			slog.WarnContext(ctx, "Failed to destroy session of inactive user", "session_id", session.ID, "error", delErr)
		}
		return nil, domainerror.NewAuthError(domainerror.ErrCodeUserInactive, "user not found or inactive", domainerror.ErrUserInactive)
	}

	session.Refresh(user)
	if err := uc.sessionStore.Refresh(ctx, session); err != nil {
		if errors.Is(err, domainerror.ErrSessionNotFound) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeSessionNotFound, "session expired or invalid", err)
		}
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}

	return &ResolveSessionOutput{
		Identity: entity.Identity{
			UserID:    user.ID,
			SessionID: session.ID,
			Email:     user.Email,
			FullName:  user.FullName,
		},
		User: user,
	}, nil
}
