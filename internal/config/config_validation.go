package config

import "time"

// defaultTokenDuration is applied when no token duration is configured.
// Issued tokens expire 24 hours after issuance.
const defaultTokenDuration = 24 * time.Hour

// applyDefaults fills in values that have sensible fallbacks so that a
// minimal deployment only needs a DSN and a token sign key.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = "model-vault"
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "0.0.0.0:8080"
	}
	if cfg.Storage.Files.Backend == "" {
		cfg.Storage.Files.Backend = FileBackendLocal
	}
	if cfg.Storage.Files.Backend == FileBackendLocal {
		if cfg.Storage.Files.UploadsDir == "" {
			cfg.Storage.Files.UploadsDir = "uploads"
		}
		if cfg.Storage.Files.ThumbnailsDir == "" {
			cfg.Storage.Files.ThumbnailsDir = "thumbnails"
		}
	}
	if cfg.Storage.Files.Backend == FileBackendS3 && cfg.Storage.Files.S3.Region == "" {
		cfg.Storage.Files.S3.Region = "us-east-1"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	switch cfg.Storage.Files.Backend {
	case FileBackendLocal:
		// defaults guarantee the directories are set
	case FileBackendS3:
		s3 := cfg.Storage.Files.S3
		if s3.Endpoint == "" || s3.Bucket == "" || s3.AccessKey == "" || s3.SecretKey == "" {
			return ErrInvalidFilesConfigs
		}
	default:
		return ErrInvalidFilesConfigs
	}

	return nil
}
