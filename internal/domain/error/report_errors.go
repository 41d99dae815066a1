package error

import "errors"

// Report domain errors.
var (
	// ErrUnknownReportKind is returned for a report kind outside the
	// fixed set.
	ErrUnknownReportKind = errors.New("unknown report kind")

	// ErrEmptyView is returned when a report is requested for a view
	// with no rows.
	ErrEmptyView = errors.New("no data available for the selected filters")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnknownReportKind ReportErrorCode = "RPT-010001"
	ErrCodeEmptyView         ReportErrorCode = "RPT-010002"

	// Internal errors (99XXXX)
	ErrCodeReportWriteFailed ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
