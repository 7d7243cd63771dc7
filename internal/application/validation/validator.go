// Package validation runs the declarative per-field rules attached to use-case inputs
// and turns violations into a structured domain error.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

var (
	once     sync.Once
	validate *validator.Validate

	fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// now is swapped in tests.
var now = time.Now

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
			return fullNamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("hexcolor", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
			return isStrongPassword(fl.Field().String())
		})
		_ = v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			if !ok {
				return false
			}
			y, m, d := now().UTC().Date()
			today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			return t.UTC().After(today)
		})

		validate = v
	})
	return validate
}

func isStrongPassword(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// Struct validates s against its `validate` tags. It returns nil, a
// *domainerror.ValidationError listing every violated field, or an error
// when s cannot be validated at all.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	fields := make([]domainerror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerror.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return domainerror.NewValidationError(fields...)
}

// DateWindow checks that end falls strictly after start.
func DateWindow(start, end time.Time) error {
	if end.After(start) {
		return nil
	}
	return domainerror.NewValidationError(domainerror.FieldError{
		Field:   "endDate",
		Message: "must be after startDate",
	})
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min", "gte":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "ne":
		return fmt.Sprintf("must not be %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gtfield":
		return "must be after " + lowerFirst(fe.Param())
	case "fullname":
		return "can only contain letters and spaces"
	case "strongpassword":
		return "must contain at least one lowercase letter, one uppercase letter, and one number"
	case "hexcolor":
		return "must be a valid hex color code"
	case "futuredate":
		return "must be in the future"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
