package error

import "errors"

// Payment ledger domain errors.
var (
	// ErrPaymentNotFound is returned when a partial payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidPaymentAmount is returned when the payment amount is zero or negative.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrPaymentExceedsBalance is returned when the payment amount is greater
	// than the transaction's remaining balance.
	ErrPaymentExceedsBalance = errors.New("payment amount exceeds remaining balance")
)

// PaymentErrorCode defines error codes for payment errors.
type PaymentErrorCode string

const (
	ErrCodeInvalidPaymentAmount  PaymentErrorCode = "PAY-010001"
	ErrCodePaymentExceedsBalance PaymentErrorCode = "PAY-010002"
	ErrCodePaymentNotFound       PaymentErrorCode = "PAY-020001"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
