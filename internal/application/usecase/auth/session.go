// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// SessionOutput carries the token a client presents on later requests.
type SessionOutput struct {
	SessionID string
	Token     *adapter.SessionToken
}

// openSession stores a fresh session for user and signs a token for it.
func openSession(
	ctx context.Context,
	sessionStore adapter.SessionStore,
	tokenService adapter.TokenService,
	user *entity.User,
) (*SessionOutput, error) {
	session := entity.NewSession(user)

	if err := sessionStore.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := tokenService.IssueSessionToken(ctx, session)
	if err != nil {
		_ = sessionStore.Delete(ctx, session.ID)
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &SessionOutput{SessionID: session.ID, Token: token}, nil
}
