package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/usecase/auth"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/infra/logger"
	"github.com/personal-finance/tracker/internal/integration/adapters"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
	"github.com/personal-finance/tracker/internal/integration/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRateLimiter_Allow(t *testing.T) {
	current := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(3, time.Minute)
	rl.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		allowed, _ := rl.allow("10.0.0.1")
		assert.True(t, allowed, "attempt %d", i+1)
	}

	allowed, retryAfter := rl.allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)

	allowed, _ = rl.allow("10.0.0.2")
	assert.True(t, allowed, "clients are limited independently")

	current = current.Add(time.Minute + time.Second)
	allowed, _ = rl.allow("10.0.0.1")
	assert.True(t, allowed, "window resets")
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	rl := NewRateLimiter(2, time.Minute)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "192.0.2.7:5555"
		r.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, string(domainerror.ErrCodeRateLimited), resp.Code)

	rl.Reset()
	assert.Equal(t, http.StatusOK, send().Code)
}

func TestRateLimiter_SkippedInTests(t *testing.T) {
	t.Setenv("ENV", "test")

	rl := NewRateLimiter(1, time.Minute)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

type userRepoStub struct {
	adapter.UserRepository
	users map[uuid.UUID]*entity.User
}

func (s *userRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func TestAuthMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	user := entity.NewUser("Ana Silva", "ana@example.com", "hash", entity.SexFemale, 30)
	store := session.NewRedisStore(client, time.Hour)
	tokens := adapters.NewTokenService("secret", "finance-tracker", time.Hour)
	users := &userRepoStub{users: map[uuid.UUID]*entity.User{user.ID: user}}

	sess := entity.NewSession(user)
	require.NoError(t, store.Save(context.Background(), sess))
	issued, err := tokens.IssueSessionToken(context.Background(), sess)
	require.NoError(t, err)

	m := NewAuthMiddleware(auth.NewResolveSessionUseCase(users, store, tokens), "session")
	r := gin.New()
	r.GET("/me", m.Authenticate(), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, dto.Success("ok", gin.H{"id": userID.String()}))
	})

	tests := []struct {
		name     string
		prepare  func(req *http.Request)
		status   int
		wantCode domainerror.AuthErrorCode
	}{
		{
			name:     "no credentials",
			prepare:  func(*http.Request) {},
			status:   http.StatusUnauthorized,
			wantCode: domainerror.ErrCodeMissingToken,
		},
		{
			name:     "malformed authorization header",
			prepare:  func(req *http.Request) { req.Header.Set("Authorization", "Token abc") },
			status:   http.StatusUnauthorized,
			wantCode: domainerror.ErrCodeMissingToken,
		},
		{
			name:     "forged token",
			prepare:  func(req *http.Request) { req.Header.Set("Authorization", "Bearer forged") },
			status:   http.StatusUnauthorized,
			wantCode: domainerror.ErrCodeInvalidToken,
		},
		{
			name:    "bearer token",
			prepare: func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+issued.Token) },
			status:  http.StatusOK,
		},
		{
			name:    "session cookie",
			prepare: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "session", Value: issued.Token}) },
			status:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(req)

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			resp := decode(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, string(tt.wantCode), resp.Code)
				return
			}
			assert.True(t, resp.Success)
		})
	}

	t.Run("deactivated user loses the session", func(t *testing.T) {
		user.IsActive = false
		t.Cleanup(func() { user.IsActive = true })

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+issued.Token)
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, string(domainerror.ErrCodeUserInactive), decode(t, rec).Code)
		assert.False(t, mr.Exists("session:"+sess.ID))
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(logger.Config{Level: "info", Format: "json", Output: &buf})

	r := gin.New()
	r.Use(RequestLogger(base))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "req-42", entry[logger.FieldRequestID])
	assert.Equal(t, logger.ComponentHTTP, entry[logger.FieldComponent])
	assert.Equal(t, "/missing", entry[logger.FieldPath])
	assert.EqualValues(t, http.StatusNotFound, entry[logger.FieldStatusCode])
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logger.New(logger.Config{Level: "error", Output: &bytes.Buffer{}})))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}
