package error

import "errors"

var (
	// ErrUserUpdateFailed is returned when a profile change cannot be stored.
	ErrUserUpdateFailed = errors.New("failed to update user")
)

// UserErrorCode defines error codes for user profile errors.
type UserErrorCode string

const (
	ErrCodeUserNotFound     UserErrorCode = "USR-010001"
	ErrCodeUserUpdateFailed UserErrorCode = "USR-020001"
)

// UserError represents a user profile error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

func (e *UserError) Error() string { return describe(e.Message, e.Err) }
func (e *UserError) Unwrap() error { return e.Err }

// NewUserError creates a new UserError.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{Code: code, Message: message, Err: err}
}
