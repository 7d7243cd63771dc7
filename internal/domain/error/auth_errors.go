// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a session token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrSessionNotFound is returned when the session behind a token no longer exists.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUserInactive is returned when the session user is deactivated or deleted.
	ErrUserInactive = errors.New("user account is inactive")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists AuthErrorCode = "AUTH-010001"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020002"

	// Session errors (03XXXX)
	ErrCodeInvalidToken    AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken    AuthErrorCode = "AUTH-030002"
	ErrCodeSessionNotFound AuthErrorCode = "AUTH-030003"
	ErrCodeUserInactive    AuthErrorCode = "AUTH-030004"

	// Delete account errors (04XXXX)
	ErrCodeInvalidConfirmation AuthErrorCode = "AUTH-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

func (e *AuthError) Error() string { return describe(e.Message, e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
