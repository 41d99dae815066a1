package error

import "errors"

// Bill store domain errors.
var (
	// ErrReceiptNotFound is returned when no receipt exists for a bill number.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrReceiptUnreadable is returned when a persisted receipt cannot
	// be read or parsed. Distinct from an empty result set.
	ErrReceiptUnreadable = errors.New("receipt is unreadable")
)

// StoreErrorCode defines error codes for bill store errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StoreErrorCode string

const (
	// Not-found errors (02XXXX)
	ErrCodeReceiptNotFound StoreErrorCode = "STO-020001"

	// I/O errors (03XXXX)
	ErrCodeReceiptUnreadable  StoreErrorCode = "STO-030001"
	ErrCodeReceiptWriteFailed StoreErrorCode = "STO-030002"
	ErrCodeRowSetWriteFailed  StoreErrorCode = "STO-030003"
	ErrCodeMasterAppendFailed StoreErrorCode = "STO-030004"
)

// StoreError represents a bill store error with code and message.
type StoreError struct {
	Code    StoreErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given code and message.
func NewStoreError(code StoreErrorCode, message string, err error) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
