package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/usecase/auth"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/infra/logger"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// identityKey is the gin context key holding the resolved entity.Identity.
const identityKey = "identity"

// AuthMiddleware resolves the session behind each request and rejects anonymous callers.
type AuthMiddleware struct {
	resolveSession *auth.ResolveSessionUseCase
	cookieName     string
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(resolveSession *auth.ResolveSessionUseCase, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		resolveSession: resolveSession,
		cookieName:     cookieName,
	}
}

// Authenticate returns a Gin middleware handler that requires a live session.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		output, err := m.resolveSession.Execute(ctx, auth.ResolveSessionInput{Token: m.extractToken(c)})
		if err != nil {
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(string(authErr.Code), authErr.Message))
				return
			}
			logger.FromContext(ctx).Error("Failed to resolve session", slog.String(logger.FieldError, err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Failure("", "Internal server error"))
			return
		}

		identity := output.Identity
		c.Set(identityKey, identity)

		l := logger.FromContext(ctx).With(slog.String(logger.FieldUserID, identity.UserID.String()))
		c.Request = c.Request.WithContext(logger.NewContext(ctx, l))

		c.Next()
	}
}

// extractToken reads the bearer token, falling back to the session cookie.
func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if m.cookieName == "" {
		return ""
	}
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return token
}

// GetIdentity returns the identity resolved by Authenticate.
func GetIdentity(c *gin.Context) (entity.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return entity.Identity{}, false
	}
	identity, ok := value.(entity.Identity)
	return identity, ok
}

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	return identity.UserID, true
}
