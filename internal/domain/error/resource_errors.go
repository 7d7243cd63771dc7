package error

import "errors"

// Sentinels raised by the repositories of user-owned resources. A resource owned
// by someone else is reported exactly like a missing one.
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category with this name and type already exists")

	ErrBudgetNotFound = errors.New("budget not found")
	ErrBudgetOverlap  = errors.New("a budget with this name already exists for the overlapping period")

	ErrGoalNotFound   = errors.New("goal not found")
	ErrGoalNameExists = errors.New("goal with this name already exists")
)

type (
	CategoryErrorCode string
	BudgetErrorCode   string
	GoalErrorCode     string
)

const (
	ErrCodeCategoryNotFound   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-010002"

	ErrCodeBudgetNotFound BudgetErrorCode = "BUD-010001"
	ErrCodeBudgetOverlap  BudgetErrorCode = "BUD-010002"

	ErrCodeGoalNotFound   GoalErrorCode = "GOL-010001"
	ErrCodeGoalNameExists GoalErrorCode = "GOL-010002"
)

func describe(message string, cause error) string {
	if cause == nil {
		return message
	}
	return message + ": " + cause.Error()
}

type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{Code: code, Message: message, Err: err}
}

func (e *CategoryError) Error() string { return describe(e.Message, e.Err) }
func (e *CategoryError) Unwrap() error { return e.Err }

type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{Code: code, Message: message, Err: err}
}

func (e *BudgetError) Error() string { return describe(e.Message, e.Err) }
func (e *BudgetError) Unwrap() error { return e.Err }

type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{Code: code, Message: message, Err: err}
}

func (e *GoalError) Error() string { return describe(e.Message, e.Err) }
func (e *GoalError) Unwrap() error { return e.Err }
