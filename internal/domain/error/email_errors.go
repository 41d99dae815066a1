package error

import "errors"

// Email domain errors.
var (
	// ErrMissingRecipient is returned when no recipient address is given.
	ErrMissingRecipient = errors.New("recipient address is required")

	// ErrMissingCredentials is returned when the SMTP sender is used
	// without sender address or credential.
	ErrMissingCredentials = errors.New("sender address and credential are required")

	// ErrSendFailed is the consolidated failure for any stage of the
	// send (connect, authenticate, send, close).
	ErrSendFailed = errors.New("email could not be sent")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingRecipient   EmailErrorCode = "EML-010001"
	ErrCodeMissingCredentials EmailErrorCode = "EML-010002"

	// I/O errors (03XXXX)
	ErrCodeSendFailed EmailErrorCode = "EML-030001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
