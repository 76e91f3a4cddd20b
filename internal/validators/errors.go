package validators

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedType is returned when a validator receives a value of a
	// type it does not know how to validate.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Validation messages surfaced verbatim to API clients in the "errors" list
// of a 400 response.
const (
	MsgAllFieldsRequired     = "email, password and username are required"
	MsgEmailPasswordRequired = "email and password are required"
	MsgInvalidEmail          = "a valid email address is required"
	MsgPasswordTooShort      = "password must be at least 6 characters long"
	MsgRatingOutOfBounds     = "rating value must be an integer between 1 and 5"
)

// ValidationError carries every validation message for a rejected payload.
// Callers detect it with [errors.As] and surface Messages as a 400 body.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface by joining all messages.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// newValidationError returns nil when no messages were collected, so callers
// can return its result directly.
func newValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
