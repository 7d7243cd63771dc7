package error

import (
	"errors"
	"strings"
)

// ErrValidation is the sentinel wrapped by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationErrorCode defines error codes for request validation.
type ValidationErrorCode string

const (
	ErrCodeValidation     ValidationErrorCode = "VAL-010001"
	ErrCodeMalformedInput ValidationErrorCode = "VAL-010002"
)

// FieldError is a single rule violation on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the structured result of a failed validation step.
type ValidationError struct {
	Code   ValidationErrorCode
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError from field violations.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Code: ErrCodeValidation, Fields: fields}
}

// NewMalformedInputError reports a request body or parameter that could not be decoded.
func NewMalformedInputError(field, message string) *ValidationError {
	return &ValidationError{
		Code:   ErrCodeMalformedInput,
		Fields: []FieldError{{Field: field, Message: message}},
	}
}
