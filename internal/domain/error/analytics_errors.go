package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidDateRange is returned when the end date is before the start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidGrouping is returned when the grouping is not valid.
	ErrInvalidGrouping = errors.New("grouping must be: day, week, or month")

	// ErrNoRowSources is returned when aggregation is requested without
	// any row source.
	ErrNoRowSources = errors.New("no row sources supplied")

	// ErrAllSourcesFailed is returned when every supplied row source
	// failed to load.
	ErrAllSourcesFailed = errors.New("no row source could be loaded")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: AGG-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange AnalyticsErrorCode = "AGG-010001"
	ErrCodeInvalidGrouping  AnalyticsErrorCode = "AGG-010002"
	ErrCodeNoRowSources     AnalyticsErrorCode = "AGG-010003"

	// I/O errors (03XXXX)
	ErrCodeAllSourcesFailed AnalyticsErrorCode = "AGG-030001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
