package store

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-model-vault/internal/logger"
)

// defaultThumbnail is attached to models uploaded without a thumbnail of
// their own and is served by the static /thumbnails route.
//
//go:embed assets/default.png
var defaultThumbnail []byte

// ensureDefaultThumbnail creates the thumbnails directory and writes the
// bundled default thumbnail into it unless one is already there.
func ensureDefaultThumbnail(thumbnailsDir string, log *logger.Logger) error {
	if thumbnailsDir == "" {
		return nil
	}

	if err := os.MkdirAll(thumbnailsDir, 0o755); err != nil {
		log.Err(err).Str("func", "ensureDefaultThumbnail").Msg("failed to create thumbnails directory")
		return fmt.Errorf("failed to create thumbnails directory %q: %w", thumbnailsDir, err)
	}

	path := filepath.Join(thumbnailsDir, "default.png")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, defaultThumbnail, 0o644); err != nil {
		log.Err(err).Str("func", "ensureDefaultThumbnail").Msg("failed to write default thumbnail")
		return fmt.Errorf("failed to write default thumbnail %q: %w", path, err)
	}

	log.Info().Str("path", path).Msg("default thumbnail created")

	return nil
}
