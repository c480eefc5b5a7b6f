package photos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/acm19/phototransformer/internal/logger"
)

// FileEnumerator lists the photos a run will transform.
type FileEnumerator interface {
	// ListPhotos returns the files in dir whose extension matches format.
	// Subdirectories are not searched.
	ListPhotos(dir string, format FileFormat) ([]string, error)
}

// fileEnumerator implements the FileEnumerator interface
type fileEnumerator struct {
	extensions Extensions
}

// NewFileEnumerator creates a new FileEnumerator instance
func NewFileEnumerator() FileEnumerator {
	return &fileEnumerator{
		extensions: NewExtensions(),
	}
}

// ListPhotos returns matching regular files in directory order (sorted by
// name). Dot files are skipped. The result is empty, not nil, when nothing
// matches.
func (e *fileEnumerator) ListPhotos(dir string, format FileFormat) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	photos := []string{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			logger.Debug("Skipping non-regular file", "name", entry.Name())
			continue
		}
		if e.extensions.Matches(entry.Name(), format) {
			photos = append(photos, filepath.Join(dir, entry.Name()))
		}
	}

	logger.Debug("Found photos", "dir", dir, "format", format, "count", len(photos))
	return photos, nil
}
