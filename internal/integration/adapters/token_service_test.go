package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

func testSession() *entity.Session {
	return &entity.Session{ID: "sess-123", UserID: uuid.New(), Email: "ana@example.com", FullName: "Ana Silva"}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", "finance-tracker", time.Hour)

	issued, err := svc.IssueSessionToken(context.Background(), testSession())
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	sid, err := svc.ParseSessionToken(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sid)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issued, err := NewTokenService("secret", "finance-tracker", time.Hour).
		IssueSessionToken(context.Background(), testSession())
	require.NoError(t, err)

	_, err = NewTokenService("other", "finance-tracker", time.Hour).
		ParseSessionToken(context.Background(), issued.Token)
	assert.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("secret", "finance-tracker", time.Minute).(*tokenService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	issued, err := svc.IssueSessionToken(context.Background(), testSession())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ParseSessionToken(context.Background(), issued.Token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_RejectsOtherIssuer(t *testing.T) {
	issued, err := NewTokenService("secret", "someone-else", time.Hour).
		IssueSessionToken(context.Background(), testSession())
	require.NoError(t, err)

	_, err = NewTokenService("secret", "finance-tracker", time.Hour).
		ParseSessionToken(context.Background(), issued.Token)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	_, err := NewTokenService("secret", "finance-tracker", time.Hour).
		ParseSessionToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordServiceWithCost(4)

	hash, err := svc.HashPassword("Str0ng!Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pass", hash)

	assert.NoError(t, svc.VerifyPassword(hash, "Str0ng!Pass"))
	assert.Error(t, svc.VerifyPassword(hash, "wrong"))
}
