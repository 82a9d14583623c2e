package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a saved budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNoBudgetingContext is returned when a budget needs an active cycle and none is selected.
	ErrNoBudgetingContext = errors.New("no active pay cycle; create or select a cycle first")

	// ErrUnresolvablePeriod is returned when the active cycle's period cannot be computed.
	ErrUnresolvablePeriod = errors.New("current period cannot be resolved for the active cycle")

	// ErrInvalidBudgetAmount is returned when an edited budget amount is negative.
	ErrInvalidBudgetAmount = errors.New("budget amounts must not be negative")

	// ErrUnknownBudgetCategory is returned when an edit references a category the budget does not have.
	ErrUnknownBudgetCategory = errors.New("budget has no such category")

	// ErrLiveBudgetReadOnly is returned when a caller tries to edit or delete the live budget.
	ErrLiveBudgetReadOnly = errors.New("the live budget cannot be modified")

	// ErrInvalidSavingsAmount is returned when global savings would be set below zero.
	ErrInvalidSavingsAmount = errors.New("savings must not be negative")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Context errors (01XXXX)
	ErrCodeNoBudgetingContext BudgetErrorCode = "BGT-010001"
	ErrCodeUnresolvablePeriod BudgetErrorCode = "BGT-010002"

	// Validation errors (02XXXX)
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-020001"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BGT-020002"
	ErrCodeUnknownBudgetCategory BudgetErrorCode = "BGT-020003"
	ErrCodeLiveBudgetReadOnly    BudgetErrorCode = "BGT-020004"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-020005"
	ErrCodeInvalidSavingsAmount  BudgetErrorCode = "BGT-020006"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BGT-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
