package error

import "errors"

// Storage errors.
var (
	// ErrStorageUnavailable is returned when the key-value store cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMissingUserScope is returned when a request carries no valid user id.
	ErrMissingUserScope = errors.New("X-User-ID header with a valid UUID is required")

	// ErrRateLimited is returned when a user sends too many write requests.
	ErrRateLimited = errors.New("too many requests, please try again later")

	// ErrStateBusy is returned when another write for the same user holds the state lock.
	ErrStateBusy = errors.New("another change is in progress, please retry")
)

// StorageErrorCode defines error codes for storage and request scoping errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	ErrCodeStorageUnavailable StorageErrorCode = "STO-010001"
	ErrCodeMissingUserScope   StorageErrorCode = "STO-020001"
	ErrCodeRateLimited        StorageErrorCode = "STO-030001"
	ErrCodeStateBusy          StorageErrorCode = "STO-040001"
)

// StorageError represents a storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
