package domain

import "errors"

// User-facing validation messages. The HTTP layer returns them verbatim.
const (
	MsgRequiredFields    = "please fill in all required fields"
	MsgInvalidDates      = "invalid dates, use the DD/MM/YYYY format"
	MsgDateRange         = "end date cannot be before start date"
	MsgInvalidAmounts    = "sale and purchase amounts must be non-negative numbers"
	MsgNegativeCustomers = "customer count cannot be negative"
)

var ErrInvalidDate = errors.New("invalid date")

// ValidationError reports input the user has to correct. It is never fatal.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
