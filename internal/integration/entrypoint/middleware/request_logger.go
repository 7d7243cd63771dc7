package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/infra/logger"
)

// RequestIDHeader carries the request id in and out of the API.
const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped logger to the context and logs each
// completed request with its status and duration.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	httpLogger := logger.WithComponent(base, logger.ComponentHTTP)

	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		l := httpLogger.With(
			slog.String(logger.FieldRequestID, requestID),
			slog.String(logger.FieldMethod, c.Request.Method),
			slog.String(logger.FieldPath, c.Request.URL.Path),
		)
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), l))

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.Int(logger.FieldStatusCode, status),
			slog.Int64(logger.FieldDuration, time.Since(start).Milliseconds()),
			slog.String(logger.FieldClientIP, c.ClientIP()),
		}
		// Auth may have replaced the request context with a user-scoped logger.
		reqLogger := logger.FromContext(c.Request.Context())
		switch {
		case status >= 500:
			reqLogger.Error("Request completed", attrs...)
		case status >= 400:
			reqLogger.Warn("Request completed", attrs...)
		default:
			reqLogger.Info("Request completed", attrs...)
		}
	}
}
