package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-model-vault/models"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 6

// emailRegexp accepts anything shaped local@domain.tld without whitespace.
// Deliberately loose: the address is confirmed by use, not by parsing.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// credentialsValidator validates registration and login payloads, collecting
// every violated rule into a single [ValidationError].
type credentialsValidator struct{}

// NewCredentialsValidator constructs a [Validator] for
// [models.RegisterRequest] and [models.LoginRequest] payloads.
func NewCredentialsValidator() Validator {
	return &credentialsValidator{}
}

// Validate dispatches on the payload type. Any other type yields
// [ErrUnsupportedType].
func (v *credentialsValidator) Validate(_ context.Context, value any) error {
	switch payload := value.(type) {
	case models.RegisterRequest:
		return v.validateRegister(payload)
	case models.LoginRequest:
		return v.validateLogin(payload)
	default:
		return ErrUnsupportedType
	}
}

func (v *credentialsValidator) validateRegister(payload models.RegisterRequest) error {
	var messages []string

	if payload.Email == "" || payload.Password == "" || payload.Username == "" {
		messages = append(messages, MsgAllFieldsRequired)
	}

	if payload.Email != "" && !emailRegexp.MatchString(payload.Email) {
		messages = append(messages, MsgInvalidEmail)
	}

	if payload.Password != "" && len(payload.Password) < minPasswordLength {
		messages = append(messages, MsgPasswordTooShort)
	}

	return newValidationError(messages)
}

func (v *credentialsValidator) validateLogin(payload models.LoginRequest) error {
	var messages []string

	if payload.Email == "" || payload.Password == "" {
		messages = append(messages, MsgEmailPasswordRequired)
	}

	if payload.Email != "" && !emailRegexp.MatchString(payload.Email) {
		messages = append(messages, MsgInvalidEmail)
	}

	return newValidationError(messages)
}
