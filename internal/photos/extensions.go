package photos

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Extensions defines the interface for file extension operations.
type Extensions interface {
	// Matches returns true if the file extension belongs to the given format.
	Matches(filePath string, format FileFormat) bool
	// OutputName returns the output file name for the photo at index.
	OutputName(prefix string, index int, format FileFormat, legacy bool) string
}

// extensions implements the Extensions interface.
type extensions struct {
	byFormat map[FileFormat][]string
}

// NewExtensions creates a new Extensions instance.
func NewExtensions() Extensions {
	return &extensions{
		byFormat: map[FileFormat][]string{
			JPG: {".jpg", ".jpeg"},
			PNG: {".png"},
		},
	}
}

// Matches returns true if the file extension belongs to the given format.
// The comparison is case-insensitive.
func (e *extensions) Matches(filePath string, format FileFormat) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return slices.Contains(e.byFormat[format], ext)
}

// OutputName returns "<prefix><index><ext>". With legacy set the extension is
// always .jpg, even for PNG-encoded output.
func (e *extensions) OutputName(prefix string, index int, format FileFormat, legacy bool) string {
	ext := format.Extension()
	if legacy {
		ext = JPG.Extension()
	}
	return prefix + strconv.Itoa(index) + ext
}
