package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
)

// Storages aggregates every persistence dependency of the service layer:
// the relational repositories and the binary file store.
type Storages struct {
	UserRepository   UserRepository
	ModelRepository  ModelRepository
	RatingRepository RatingRepository
	FileStorage      FileStorage
}

// NewStorages connects to PostgreSQL, applies pending migrations, selects
// the configured file storage backend, and wires all repositories together.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("connection to database failed")
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("database migration failed")
		return nil, err
	}

	fileStorage, err := newFileStorage(ctx, cfg.Files, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("file storage initialization failed")
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		ModelRepository:  NewModelRepository(db, log),
		RatingRepository: NewRatingRepository(db, log),
		FileStorage:      fileStorage,
	}, nil
}

// newFileStorage selects the file storage backend from the configuration.
// Thumbnails are always served from the local thumbnails directory, so the
// default thumbnail is provisioned for either backend.
func newFileStorage(ctx context.Context, cfg config.Files, log *logger.Logger) (FileStorage, error) {
	if err := ensureDefaultThumbnail(cfg.ThumbnailsDir, log); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.FileBackendS3:
		return NewS3FileStorage(ctx, cfg, log)
	case config.FileBackendLocal, "":
		return NewLocalFileStorage(cfg, log)
	default:
		return nil, fmt.Errorf("unknown file storage backend: %q", cfg.Backend)
	}
}
