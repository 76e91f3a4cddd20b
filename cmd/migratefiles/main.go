// Command migratefiles moves model files previously stored on local disk
// into the configured object store, rewriting each model's file URL. It is a
// one-shot maintenance tool for switching an existing deployment from the
// local backend to s3.
package main

import (
	"context"

	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/service"
	"github.com/MKhiriev/go-model-vault/internal/store"
)

func main() {
	log := logger.NewLogger("model-vault-migrate-files")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Storage.Files.Backend != config.FileBackendS3 {
		log.Fatal().Str("backend", cfg.Storage.Files.Backend).Msg("file migration requires the s3 storage backend")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	migration := service.NewMigrationService(storages.ModelRepository, storages.FileStorage, log)

	report, err := migration.MigrateFiles(ctx, cfg.Storage.Files.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("file migration failed")
	}

	log.Info().
		Int("total", report.Total).
		Int("migrated", report.Migrated).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("file migration finished")
}
