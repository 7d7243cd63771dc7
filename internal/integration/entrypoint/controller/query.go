package controller

import (
	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
	"github.com/personal-finance/tracker/internal/domain/valueobject"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// parseDateRange reads optional startDate/endDate query values.
func parseDateRange(start, end string) (valueobject.DateRange, error) {
	var (
		r      valueobject.DateRange
		fields []domainerror.FieldError
	)
	if start != "" {
		t, err := dto.ParseDate(start)
		if err != nil {
			fields = append(fields, domainerror.FieldError{Field: "startDate", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			r.Start = &t
		}
	}
	if end != "" {
		t, err := dto.ParseDate(end)
		if err != nil {
			fields = append(fields, domainerror.FieldError{Field: "endDate", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			r.End = &t
		}
	}
	if len(fields) > 0 {
		return valueobject.DateRange{}, domainerror.NewValidationError(fields...)
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return valueobject.DateRange{}, domainerror.NewValidationError(domainerror.FieldError{
			Field: "endDate", Message: "must not be before startDate",
		})
	}
	return r, nil
}

// parseTransactionType reads an optional income/expense filter.
func parseTransactionType(value string) (*entity.TransactionType, error) {
	if value == "" {
		return nil, nil
	}
	t := entity.TransactionType(value)
	if t != entity.TransactionTypeIncome && t != entity.TransactionTypeExpense {
		return nil, domainerror.NewValidationError(domainerror.FieldError{
			Field: "type", Message: "must be one of: income, expense",
		})
	}
	return &t, nil
}

// parseOptionalUUID reads an optional UUID query value named field.
func parseOptionalUUID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domainerror.NewValidationError(domainerror.FieldError{
			Field: field, Message: "must be a valid UUID",
		})
	}
	return &id, nil
}
