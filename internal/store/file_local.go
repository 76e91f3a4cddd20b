package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
)

// localFileStorage is the filesystem-backed implementation of [FileStorage].
// Files are written under a single uploads directory and served back by the
// HTTP layer as static content under /uploads/.
type localFileStorage struct {
	logger        *logger.Logger
	uploadsDir    string
	publicBaseURL string
}

// NewLocalFileStorage constructs a [FileStorage] rooted at the configured
// uploads directory, creating the directory if it does not exist yet.
func NewLocalFileStorage(cfg config.Files, log *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Err(err).Str("func", "NewLocalFileStorage").Msg("failed to create uploads directory")
		return nil, fmt.Errorf("failed to create uploads directory %q: %w", cfg.UploadsDir, err)
	}

	return &localFileStorage{
		logger:        log,
		uploadsDir:    cfg.UploadsDir,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// UploadFile streams content into a new file under the uploads directory.
// The partially written file is removed when the copy fails.
func (s *localFileStorage) UploadFile(ctx context.Context, fileName string, content io.Reader, size int64) error {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.uploadsDir, filepath.Base(fileName))

	dst, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "localFileStorage.UploadFile").Str("file_name", fileName).Msg("failed to create file")
		return fmt.Errorf("failed to create file %q: %w", fileName, err)
	}

	if _, err = io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(path)
		log.Err(err).Str("func", "localFileStorage.UploadFile").Str("file_name", fileName).Msg("failed to write file content")
		return fmt.Errorf("failed to write file %q: %w", fileName, err)
	}

	if err = dst.Close(); err != nil {
		os.Remove(path)
		log.Err(err).Str("func", "localFileStorage.UploadFile").Str("file_name", fileName).Msg("failed to close file")
		return fmt.Errorf("failed to close file %q: %w", fileName, err)
	}

	return nil
}

// UploadFileFromPath copies an existing local file into the uploads
// directory under the given file name.
func (s *localFileStorage) UploadFileFromPath(ctx context.Context, fileName string, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open source file %q: %w", path, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %q: %w", path, err)
	}

	return s.UploadFile(ctx, fileName, src, info.Size())
}

// GetFileURL returns the public URL the file is served from by the static
// /uploads/ route.
func (s *localFileStorage) GetFileURL(fileName string) string {
	return s.publicBaseURL + "/uploads/" + fileName
}

// DeleteFile removes a stored file. A missing file is treated as already
// deleted.
func (s *localFileStorage) DeleteFile(ctx context.Context, fileName string) error {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.uploadsDir, filepath.Base(fileName))

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Err(err).Str("func", "localFileStorage.DeleteFile").Str("file_name", fileName).Msg("failed to delete file")
		return fmt.Errorf("failed to delete file %q: %w", fileName, err)
	}

	return nil
}
