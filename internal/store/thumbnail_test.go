package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ensureDefaultThumbnail(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "thumbnails")
	log := logger.NewLogger("test")

	require.NoError(t, ensureDefaultThumbnail(dir, log))

	path := filepath.Join(dir, "default.png")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
	assert.Equal(t, []byte("\x89PNG"), content[:4])
}

func Test_ensureDefaultThumbnail_KeepsExisting(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewLogger("test")

	path := filepath.Join(dir, "default.png")
	require.NoError(t, os.WriteFile(path, []byte("custom"), 0o644))

	require.NoError(t, ensureDefaultThumbnail(dir, log))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("custom"), content)
}

func Test_ensureDefaultThumbnail_EmptyDirIsNoop(t *testing.T) {
	require.NoError(t, ensureDefaultThumbnail("", logger.NewLogger("test")))
}
