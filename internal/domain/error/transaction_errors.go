package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryTypeMismatch is returned when the transaction type differs from its category type.
	ErrCategoryTypeMismatch = errors.New("transaction type must match category type")

	// ErrBudgetSyncFailed is returned when budget spending could not be updated alongside a transaction write.
	ErrBudgetSyncFailed = errors.New("failed to update budget spending")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010001"
	ErrCodeCategoryTypeMismatch   TransactionErrorCode = "TXN-010002"
	ErrCodeCategoryNotFoundForTxn TransactionErrorCode = "TXN-010003"

	// Consistency errors (02XXXX)
	ErrCodeBudgetSyncFailed TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

func (e *TransactionError) Error() string { return describe(e.Message, e.Err) }
func (e *TransactionError) Unwrap() error { return e.Err }

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
