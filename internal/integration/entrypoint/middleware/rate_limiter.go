// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/infra/logger"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// sweepEvery is how many allow calls pass between sweeps of expired windows.
const sweepEvery = 256

// attemptWindow tracks the attempts made by one client inside the current window.
type attemptWindow struct {
	attempts int
	resetAt  time.Time
}

// RateLimiter is a fixed-window, per-client-IP limiter kept in process memory.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*attemptWindow
	maxAttempts int
	window      time.Duration
	calls       int
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing maxAttempts per window for each client IP.
func NewRateLimiter(maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:     make(map[string]*attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, retryAfter := rl.allow(clientIP)
		if !allowed {
			logger.FromContext(c.Request.Context()).Warn("Login rate limit exceeded",
				slog.String(logger.FieldClientIP, clientIP))
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Failure(
				string(domainerror.ErrCodeRateLimited),
				"Too many login attempts. Please try again later.",
			))
			return
		}

		c.Next()
	}
}

// allow records an attempt for key. When the limit is reached it reports how long
// until the window resets.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	rl.calls++
	if rl.calls%sweepEvery == 0 {
		rl.sweep(now)
	}

	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &attemptWindow{attempts: 1, resetAt: now.Add(rl.window)}
		return true, 0
	}

	if w.attempts < rl.maxAttempts {
		w.attempts++
		return true, 0
	}

	return false, w.resetAt.Sub(now)
}

func (rl *RateLimiter) sweep(now time.Time) {
	for key, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}

// Reset clears every tracked window.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*attemptWindow)
}
