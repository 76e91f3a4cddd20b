package service

import (
	"context"

	"github.com/MKhiriev/go-model-vault/models"
)

// AuthService handles user registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	// Register validates the registration payload, hashes the password, and
	// creates a new user account.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	// Login verifies the supplied credentials and returns the account.
	// Unknown email and wrong password are indistinguishable to the caller:
	// both yield ErrWrongCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate parses the token and confirms the account it names still
	// exists. Returns ErrUnknownUser for tokens of deleted accounts.
	Authenticate(ctx context.Context, tokenString string) (models.Token, error)
}

// ModelService handles all 3D model operations: listing, upload, partial
// update, deletion, search, rating, and the top-rated chart.
type ModelService interface {
	// List returns one page of models together with pagination metadata.
	List(ctx context.Context, page int, limit int) ([]models.Model3D, models.Pagination, error)
	// Get returns a single model by id.
	Get(ctx context.Context, modelID int64) (models.Model3D, error)
	// Upload stores the uploaded file, persists its metadata, and returns
	// the created record. The file is removed again when metadata
	// persistence fails.
	Upload(ctx context.Context, userID int64, upload models.Model3DUpload) (models.Model3D, error)
	// Update applies a partial update to a model owned by userID.
	Update(ctx context.Context, userID int64, modelID int64, update models.Model3DUpdate) (models.Model3D, error)
	// Delete removes a model owned by userID together with its stored file.
	Delete(ctx context.Context, userID int64, modelID int64) error
	// Rate records userID's rating of a model, replacing any previous value,
	// and returns the stored rating.
	Rate(ctx context.Context, userID int64, modelID int64, request models.RateRequest) (models.Rating, error)
	// Search returns models matching the free-text query and/or exact tag.
	Search(ctx context.Context, query string, tag string) ([]models.Model3D, error)
	// TopRated returns up to limit models ordered by average rating.
	TopRated(ctx context.Context, limit int) ([]models.RatedModel3D, error)
}

// MigrationService moves stored model files between storage backends. It
// backs the standalone migration command, not the HTTP API.
type MigrationService interface {
	// MigrateFiles uploads every model file found under uploadsDir to the
	// active storage backend and rewrites the models' file URLs.
	MigrateFiles(ctx context.Context, uploadsDir string) (FileMigrationReport, error)
}
