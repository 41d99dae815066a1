// Package error defines domain-specific errors for the Grocery POS application.
package error

import "errors"

// Billing domain errors.
var (
	// ErrMissingCustomerName is returned when the customer name is empty.
	ErrMissingCustomerName = errors.New("customer name is required")

	// ErrMissingPhoneNumber is returned when the phone number is empty.
	ErrMissingPhoneNumber = errors.New("phone number is required")

	// ErrNoItemsSelected is returned when no selection has a positive quantity.
	ErrNoItemsSelected = errors.New("at least one product must be selected")

	// ErrUnknownProduct is returned when a selection names a product
	// that is not in the catalog.
	ErrUnknownProduct = errors.New("product is not in the catalog")

	// ErrNegativeQuantity is returned when a selection carries a
	// negative quantity.
	ErrNegativeQuantity = errors.New("quantity must not be negative")

	// ErrBillNumberExhausted is returned when no unused bill number
	// could be generated.
	ErrBillNumberExhausted = errors.New("could not generate an unused bill number")
)

// BillingErrorCode defines error codes for billing errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCustomerName BillingErrorCode = "BIL-010001"
	ErrCodeMissingPhoneNumber  BillingErrorCode = "BIL-010002"
	ErrCodeNoItemsSelected     BillingErrorCode = "BIL-010003"
	ErrCodeUnknownProduct      BillingErrorCode = "BIL-010004"
	ErrCodeNegativeQuantity    BillingErrorCode = "BIL-010005"

	// Internal errors (99XXXX)
	ErrCodeBillNumberExhausted BillingErrorCode = "BIL-990001"
)

// BillingError represents a billing error with code and message.
type BillingError struct {
	Code    BillingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillingError) Unwrap() error {
	return e.Err
}

// NewBillingError creates a new BillingError with the given code and message.
func NewBillingError(code BillingErrorCode, message string, err error) *BillingError {
	return &BillingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
