// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// DateLayout is the calendar-day format used on the wire.
const DateLayout = "2006-01-02"

// Response is the envelope wrapped around every API response.
type Response struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    any                      `json:"data,omitempty"`
	Code    string                   `json:"code,omitempty"`
	Errors  []domainerror.FieldError `json:"errors,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

// Success builds a successful envelope.
func Success(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Failure builds an error envelope carrying a domain error code.
func Failure(code, message string) Response {
	return Response{Success: false, Message: message, Code: code}
}

// ValidationFailure builds the envelope for a rejected request, listing every field violation.
func ValidationFailure(verr *domainerror.ValidationError) Response {
	return Response{
		Success: false,
		Message: "Validation failed",
		Code:    string(verr.Code),
		Errors:  verr.Fields,
	}
}

// Date is a calendar day that decodes from either "2006-01-02" or RFC 3339.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate parses a calendar day in DateLayout, falling back to RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

// TimePtr returns the wrapped time of an optional Date.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// Value returns the wrapped time, or the zero time for a nil Date.
func (d *Date) Value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
