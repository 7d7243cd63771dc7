package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
	issuer string
	maxAge time.Duration
	now    func() time.Time
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret, issuer string, maxAge time.Duration) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		issuer: issuer,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// IssueSessionToken signs an HS256 token whose sid claim references the session.
func (s *tokenService) IssueSessionToken(_ context.Context, session *entity.Session) (*adapter.SessionToken, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.maxAge)

	claims := SessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   session.UserID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &adapter.SessionToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// ParseSessionToken verifies the token and returns its session id.
func (s *tokenService) ParseSessionToken(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	if claims.SessionID == "" {
		return "", errors.New("token carries no session id")
	}

	return claims.SessionID, nil
}
