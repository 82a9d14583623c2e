package error

import "errors"

// Expense domain errors.
var (
	ErrExpenseNotFound          = errors.New("expense not found")
	ErrInvalidExpenseAmount     = errors.New("amount must be greater than zero")
	ErrInvalidExpenseDate       = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidExpenseDateRange  = errors.New("end date must not be before start date")
	ErrInvalidExpenseFrequency  = errors.New("frequency must be: once, weekly, biweekly, monthly, or yearly")
	ErrMissingExpenseCategoryID = errors.New("category id is required")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	ErrCodeExpenseNotFound          ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount     ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate       ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseDateRange  ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseFrequency  ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseCategoryID ExpenseErrorCode = "EXP-010006"
	ErrCodeMissingExpenseFields     ExpenseErrorCode = "EXP-010007"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
