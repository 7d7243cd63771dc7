package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

type registration struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100,fullname"`
	Password string `json:"password" validate:"required,min=6,max=128,strongpassword"`
	Age      int    `json:"age" validate:"required,gte=18,lte=120"`
}

type categoryInput struct {
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type goalInput struct {
	TargetAmount decimal.Decimal `json:"targetAmount" validate:"gte=0.01"`
	TargetDate   time.Time       `json:"targetDate" validate:"required,futuredate"`
}

type progressInput struct {
	Amount decimal.Decimal `json:"amount" validate:"ne=0"`
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *domainerror.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	assert.Equal(t, domainerror.ErrCodeValidation, verr.Code)
	assert.ErrorIs(t, err, domainerror.ErrValidation)

	fields := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	return fields
}

func TestStruct_Registration(t *testing.T) {
	valid := registration{FullName: "Ana Silva", Password: "Secret123", Age: 18}

	t.Run("accepts the minimum age", func(t *testing.T) {
		assert.NoError(t, Struct(valid))
	})

	t.Run("rejects under-age users", func(t *testing.T) {
		in := valid
		in.Age = 17

		fields := fieldsOf(t, Struct(in))

		assert.Equal(t, "must be at least 18", fields["age"])
	})

	t.Run("reports every violation at once", func(t *testing.T) {
		in := registration{FullName: "Ana 2", Password: "secret", Age: 200}

		fields := fieldsOf(t, Struct(in))

		assert.Len(t, fields, 3)
		assert.Equal(t, "can only contain letters and spaces", fields["fullName"])
		assert.Contains(t, fields["password"], "uppercase")
		assert.Equal(t, "must be at most 120", fields["age"])
	})

	t.Run("uses json names for missing fields", func(t *testing.T) {
		fields := fieldsOf(t, Struct(registration{}))

		assert.Equal(t, "is required", fields["fullName"])
		assert.Equal(t, "is required", fields["password"])
		assert.Equal(t, "is required", fields["age"])
	})
}

func TestStruct_HexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"", true},
		{"#A1B2C3", true},
		{"#a1b2c3", true},
		{"A1B2C3", false},
		{"#FFF", false},
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			err := Struct(categoryInput{Color: tt.color})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, "must be a valid hex color code", fieldsOf(t, err)["color"])
		})
	}
}

func TestStruct_FutureDateAndDecimals(t *testing.T) {
	original := now
	now = func() time.Time { return time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = original })

	t.Run("tomorrow is in the future", func(t *testing.T) {
		in := goalInput{TargetAmount: decimal.NewFromInt(1000), TargetDate: time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)}
		assert.NoError(t, Struct(in))
	})

	t.Run("today is not in the future", func(t *testing.T) {
		in := goalInput{TargetAmount: decimal.NewFromInt(1000), TargetDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, "must be in the future", fieldsOf(t, Struct(in))["targetDate"])
	})

	t.Run("decimal lower bound", func(t *testing.T) {
		in := goalInput{TargetAmount: decimal.Zero, TargetDate: time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, "must be at least 0.01", fieldsOf(t, Struct(in))["targetAmount"])

		in.TargetAmount = decimal.RequireFromString("0.01")
		assert.NoError(t, Struct(in))
	})

	t.Run("decimal must not be zero", func(t *testing.T) {
		assert.Equal(t, "must not be 0", fieldsOf(t, Struct(progressInput{}))["amount"])
		assert.NoError(t, Struct(progressInput{Amount: decimal.NewFromInt(-50)}))
	})
}

func TestDateWindow(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, DateWindow(start, start.AddDate(0, 0, 1)))

	fields := fieldsOf(t, DateWindow(start, start))
	assert.Equal(t, "must be after startDate", fields["endDate"])
}
