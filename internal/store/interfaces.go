package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-model-vault/models"
)

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the generated id and
	// creation timestamp. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with the given id, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ModelRepository persists 3D model metadata.
type ModelRepository interface {
	// GetModels returns one page of models ordered by id.
	GetModels(ctx context.Context, limit int, offset int) ([]models.Model3D, error)
	// CountModels returns the total number of stored models.
	CountModels(ctx context.Context) (int64, error)
	// GetModelByID returns a single model, or ErrModelNotFound.
	GetModelByID(ctx context.Context, modelID int64) (models.Model3D, error)
	// CreateModel inserts model metadata and returns it with the generated id.
	CreateModel(ctx context.Context, model models.Model3D) (models.Model3D, error)
	// UpdateModel applies the non-nil fields of update to the model and
	// returns the updated row, or ErrModelNotFound.
	UpdateModel(ctx context.Context, modelID int64, update models.Model3DUpdate) (models.Model3D, error)
	// DeleteModel removes the model row, or returns ErrModelNotFound.
	DeleteModel(ctx context.Context, modelID int64) error
	// SearchModels returns models whose title or description contains query
	// case-insensitively and whose tags contain tag verbatim. Either filter
	// may be empty; with both empty every model is returned.
	SearchModels(ctx context.Context, query string, tag string) ([]models.Model3D, error)
	// GetTopRated returns up to limit models ordered by average rating,
	// models without ratings counting as zero.
	GetTopRated(ctx context.Context, limit int) ([]models.RatedModel3D, error)
}

// RatingRepository persists per-user model ratings.
type RatingRepository interface {
	// UpsertRating inserts the rating or, when the user already rated the
	// model, replaces the previous value. The stored row is returned.
	UpsertRating(ctx context.Context, rating models.Rating) (models.Rating, error)
}

// FileStorage stores and serves the binary model and thumbnail files. The
// relational repositories hold only metadata; bytes live behind this
// interface so local disk and S3 backends are interchangeable.
type FileStorage interface {
	// UploadFile stores the content under the given file name.
	UploadFile(ctx context.Context, fileName string, content io.Reader, size int64) error
	// UploadFileFromPath stores an existing file from the local filesystem
	// under the given file name.
	UploadFileFromPath(ctx context.Context, fileName string, path string) error
	// GetFileURL returns the public URL the stored file is served from.
	GetFileURL(fileName string) string
	// DeleteFile removes a stored file. Deleting a missing file is not an
	// error.
	DeleteFile(ctx context.Context, fileName string) error
}
