package service

import "errors"

var (
	// ErrWrongCredentials is returned on login when the email is unknown or
	// the password does not match. The two cases are deliberately collapsed
	// into one error so responses cannot be used to probe which emails are
	// registered.
	ErrWrongCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (expired, malformed, wrong issuer, bad signature).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnknownUser is returned when a syntactically valid token names an
	// account that no longer exists.
	ErrUnknownUser = errors.New("unknown user")

	// ErrNotOwner is returned when a user attempts to modify or delete a
	// model owned by someone else.
	ErrNotOwner = errors.New("you are not the owner of this model")

	// ErrNoFileProvided is returned when an upload request carries no file.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrUnsupportedFileType is returned when an uploaded file's extension
	// is not in the 3D model allow-list.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileTooLarge is returned when an uploaded file exceeds the size cap.
	ErrFileTooLarge = errors.New("file is too large")
)
