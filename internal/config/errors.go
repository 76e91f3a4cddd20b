package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid relational storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, a missing sign key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidFilesConfigs indicates an unknown file storage backend or
	// incomplete settings for the selected backend (for example, an s3
	// backend without endpoint or credentials).
	ErrInvalidFilesConfigs = errors.New("invalid file storage configuration")
)
