package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/store"
	"github.com/MKhiriev/go-model-vault/internal/workers"
	"github.com/MKhiriev/go-model-vault/models"
)

const (
	// migrationPageSize is how many model rows are read per page while
	// walking the whole table.
	migrationPageSize = 100

	// migrationWorkerCount bounds concurrent uploads against the target
	// storage backend.
	migrationWorkerCount = 4
)

// FileMigrationReport summarises one run of the file migration.
type FileMigrationReport struct {
	Total    int
	Migrated int
	Skipped  int
	Failed   int
}

// migrationService moves model files from a local uploads directory into the
// active storage backend, rewriting each migrated model's file URL.
type migrationService struct {
	modelRepository store.ModelRepository
	fileStorage     store.FileStorage
	logger          *logger.Logger
}

// NewMigrationService constructs a MigrationService over the given model
// repository and target file storage.
func NewMigrationService(modelRepository store.ModelRepository, fileStorage store.FileStorage, logger *logger.Logger) MigrationService {
	return &migrationService{
		modelRepository: modelRepository,
		fileStorage:     fileStorage,
		logger:          logger,
	}
}

// MigrateFiles walks every model row, uploads the model's file from
// uploadsDir to the active storage backend, and rewrites the row's file URL.
// Models whose file is not present on disk are skipped; individual upload
// failures are counted and logged but do not abort the run.
func (m *migrationService) MigrateFiles(ctx context.Context, uploadsDir string) (FileMigrationReport, error) {
	log := logger.FromContext(ctx)

	var report FileMigrationReport

	// Workers touch only Migrated and Failed; Total and Skipped are counted
	// on this goroutine before submission.
	var mu sync.Mutex

	pool := workers.NewPool(migrationWorkerCount)

	offset := 0
	for {
		page, err := m.modelRepository.GetModels(ctx, migrationPageSize, offset)
		if err != nil {
			pool.Wait()
			return report, fmt.Errorf("listing models failed: %w", err)
		}
		if len(page) == 0 {
			break
		}
		offset += len(page)

		for _, model := range page {
			model := model
			report.Total++

			path := filepath.Join(uploadsDir, filepath.Base(model.FileName))
			if _, statErr := os.Stat(path); statErr != nil {
				log.Warn().Int64("model_id", model.ID).Str("file_name", model.FileName).Msg("file not found on disk, skipping")
				report.Skipped++
				continue
			}

			pool.Submit(func() {
				if err := m.migrateOne(ctx, model, path); err != nil {
					log.Err(err).Int64("model_id", model.ID).Str("file_name", model.FileName).Msg("file migration failed")
					mu.Lock()
					report.Failed++
					mu.Unlock()
					return
				}

				log.Info().Int64("model_id", model.ID).Str("file_name", model.FileName).Msg("file migrated")
				mu.Lock()
				report.Migrated++
				mu.Unlock()
			})
		}
	}

	pool.Wait()

	return report, nil
}

// migrateOne uploads a single file and points its model row at the new URL.
func (m *migrationService) migrateOne(ctx context.Context, model models.Model3D, path string) error {
	if err := m.fileStorage.UploadFileFromPath(ctx, model.FileName, path); err != nil {
		return fmt.Errorf("uploading %q failed: %w", model.FileName, err)
	}

	fileURL := m.fileStorage.GetFileURL(model.FileName)
	if _, err := m.modelRepository.UpdateModel(ctx, model.ID, models.Model3DUpdate{FileURL: &fileURL}); err != nil {
		return fmt.Errorf("rewriting file URL of model %d failed: %w", model.ID, err)
	}

	return nil
}
