package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredFileName produces the object key a newly uploaded file is stored
// under: a time-ordered UUID plus the lowercased extension of the original
// name. Original names are never reused so that concurrent uploads of
// identically named files cannot collide.
func StoredFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString() + ext
	}

	return v7.String() + ext
}
