// Package error defines domain-specific errors for the pay-cycle budgeting service.
package error

import "errors"

// Cycle domain errors.
var (
	// ErrCycleNotFound is returned when a cycle profile is not found.
	ErrCycleNotFound = errors.New("cycle profile not found")

	// ErrMissingCycleName is returned when a cycle profile has no name.
	ErrMissingCycleName = errors.New("cycle name is required")

	// ErrInvalidCycleStartDate is returned when the start date is not a valid calendar date.
	ErrInvalidCycleStartDate = errors.New("invalid start date, expected YYYY-MM-DD")

	// ErrNegativeIncome is returned when the cycle income is below zero.
	ErrNegativeIncome = errors.New("income must not be negative")

	// ErrInvalidCycleFrequency is returned when the frequency cannot drive a pay cycle.
	ErrInvalidCycleFrequency = errors.New("frequency must be: weekly, biweekly, monthly, or yearly")

	// ErrNoActiveCycle is returned when an operation needs an active cycle and none is selected.
	ErrNoActiveCycle = errors.New("no active pay cycle")
)

// CycleErrorCode defines error codes for cycle errors.
// Format: CYC-XXYYYY where XX is category and YYYY is specific error.
type CycleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCycleNotFound         CycleErrorCode = "CYC-010001"
	ErrCodeMissingCycleName      CycleErrorCode = "CYC-010002"
	ErrCodeInvalidCycleStartDate CycleErrorCode = "CYC-010003"
	ErrCodeNegativeIncome        CycleErrorCode = "CYC-010004"
	ErrCodeInvalidCycleFrequency CycleErrorCode = "CYC-010005"
	ErrCodeMissingCycleFields    CycleErrorCode = "CYC-010006"

	// State errors (02XXXX)
	ErrCodeNoActiveCycle CycleErrorCode = "CYC-020001"

	// Internal errors (99XXXX)
	ErrCodeCycleInternalError CycleErrorCode = "CYC-990001"
)

// CycleError represents a cycle error with code and message.
type CycleError struct {
	Code    CycleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CycleError) Unwrap() error {
	return e.Err
}

// NewCycleError creates a new CycleError with the given code and message.
func NewCycleError(code CycleErrorCode, message string, err error) *CycleError {
	return &CycleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
