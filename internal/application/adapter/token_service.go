// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

// SessionToken is the signed credential handed to a client after login.
type SessionToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService signs and verifies the tokens that reference server-side sessions.
type TokenService interface {
	// IssueSessionToken signs a token carrying the session id.
	IssueSessionToken(ctx context.Context, session *entity.Session) (*SessionToken, error)

	// ParseSessionToken verifies a token and returns the session id it carries.
	ParseSessionToken(ctx context.Context, token string) (string, error)
}
