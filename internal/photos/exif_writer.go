package photos

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/acm19/phototransformer/internal/logger"
	"github.com/barasher/go-exiftool"
)

// ExifOriginalFileName is the metadata tag holding the source file name.
const ExifOriginalFileName = "OriginalFileName"

// ExifWriter tags transformed photos with the name of the file they came from.
type ExifWriter interface {
	// WriteOriginalFileNameIfMissing records originalFileName in the output
	// photo at filePath, encoded as format, unless the tag is already set.
	// Returns true if the tag was written.
	WriteOriginalFileNameIfMissing(filePath string, format FileFormat, originalFileName string) (bool, error)
}

type exifWriter struct {
	et *exiftool.Exiftool
}

// NewExifWriter returns an ExifWriter that reads and writes through et.
func NewExifWriter(et *exiftool.Exiftool) ExifWriter {
	return &exifWriter{et: et}
}

func (w *exifWriter) WriteOriginalFileNameIfMissing(filePath string, format FileFormat, originalFileName string) (bool, error) {
	// exiftool refuses to rewrite a file whose name does not match its
	// container, which happens for PNG output under legacy .jpg names.
	if !strings.EqualFold(filepath.Ext(filePath), format.Extension()) {
		logger.Debug("Container does not match file name, not tagging", "file", filepath.Base(filePath), "format", format)
		return false, nil
	}
	if w.et == nil {
		return false, errors.New("exiftool not initialised")
	}

	existing := w.et.ExtractMetadata(filePath)
	if len(existing) > 0 && existing[0].Err == nil {
		if _, err := existing[0].GetString(ExifOriginalFileName); err == nil {
			logger.Debug("Original name already tagged", "file", filepath.Base(filePath))
			return false, nil
		}
	}

	md := exiftool.EmptyFileMetadata()
	md.File = filePath
	md.SetString(ExifOriginalFileName, originalFileName)
	batch := []exiftool.FileMetadata{md}
	w.et.WriteMetadata(batch)
	if err := batch[0].Err; err != nil {
		return false, err
	}

	logger.Debug("Tagged original name", "file", filepath.Base(filePath), "original", originalFileName)
	return true, nil
}
