package error

import "errors"

// Party directory domain errors.
var (
	// ErrPartyNotFound is returned when a party is not found in the directory.
	ErrPartyNotFound = errors.New("party not found")

	// ErrPartyNameRequired is returned when a party is created without a name.
	ErrPartyNameRequired = errors.New("party name is required")

	// ErrInvalidPartyRole is returned when the party role is not one of
	// lender, borrower or intermediary.
	ErrInvalidPartyRole = errors.New("invalid party role")

	// ErrDuplicatePartyName is returned when a party with the same name
	// already exists for the role.
	ErrDuplicatePartyName = errors.New("a party with this name already exists")

	// ErrPartyInUse is returned when deleting a party that is still
	// referenced by transactions.
	ErrPartyInUse = errors.New("party is referenced by existing transactions")
)

// PartyErrorCode defines error codes for party errors.
type PartyErrorCode string

const (
	ErrCodePartyNameRequired  PartyErrorCode = "PTY-010001"
	ErrCodeInvalidPartyRole   PartyErrorCode = "PTY-010002"
	ErrCodeDuplicatePartyName PartyErrorCode = "PTY-010003"
	ErrCodePartyInUse         PartyErrorCode = "PTY-010004"
	ErrCodePartyNotFound      PartyErrorCode = "PTY-020001"
)

// PartyError represents a party error with code and message.
type PartyError struct {
	Code    PartyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PartyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PartyError) Unwrap() error {
	return e.Err
}

// NewPartyError creates a new PartyError with the given code and message.
func NewPartyError(code PartyErrorCode, message string, err error) *PartyError {
	return &PartyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
