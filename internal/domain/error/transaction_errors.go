// Package error defines domain-specific errors for the BrokerLedger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidPrincipal is returned when the principal amount is missing or negative.
	ErrInvalidPrincipal = errors.New("principal must be a non-negative amount")

	// ErrInvalidInterestRate is returned when the interest rate is missing or negative.
	ErrInvalidInterestRate = errors.New("interest rate must be a non-negative percentage")

	// ErrInvalidBrokerageRate is returned when the brokerage rate is negative.
	ErrInvalidBrokerageRate = errors.New("brokerage rate must be a non-negative percentage")

	// ErrEndDateBeforeStartDate is returned when the end date precedes the start date.
	ErrEndDateBeforeStartDate = errors.New("end date must not be before start date")

	// ErrInvalidDayCountBasis is returned when the day-count basis is zero or negative.
	ErrInvalidDayCountBasis = errors.New("day count basis must be a positive number of days")

	// ErrLenderPartyRequired is returned when no lending party is referenced.
	ErrLenderPartyRequired = errors.New("lending party is required")

	// ErrBorrowerPartyRequired is returned when no borrowing party is referenced.
	ErrBorrowerPartyRequired = errors.New("borrowing party is required")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPrincipal         TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidInterestRate      TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidBrokerageRate     TransactionErrorCode = "TXN-010003"
	ErrCodeEndDateBeforeStartDate   TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidDayCountBasis     TransactionErrorCode = "TXN-010005"
	ErrCodeLenderPartyRequired      TransactionErrorCode = "TXN-010006"
	ErrCodeBorrowerPartyRequired    TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010008"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
