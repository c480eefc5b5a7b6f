package photos

import (
	"fmt"
	"strings"
)

// FileFormat is the image container read from the source directory and
// written to the output directory.
type FileFormat int

const (
	// JPG is lossy JPEG.
	JPG FileFormat = iota
	// PNG is lossless PNG.
	PNG
)

// AllowedFileFormats lists the accepted format names.
const AllowedFileFormats = "JPG, PNG"

func (f FileFormat) String() string {
	switch f {
	case JPG:
		return "JPG"
	case PNG:
		return "PNG"
	default:
		return fmt.Sprintf("FileFormat(%d)", int(f))
	}
}

// Extension returns the canonical file extension for the format, including the dot.
func (f FileFormat) Extension() string {
	if f == PNG {
		return ".png"
	}
	return ".jpg"
}

// MirrorType is the reflection applied to each photo.
type MirrorType int

const (
	// MirrorNone leaves the image unchanged.
	MirrorNone MirrorType = iota
	// MirrorHorizontal flips about the vertical axis (reverses columns).
	MirrorHorizontal
	// MirrorVertical flips about the horizontal axis (reverses rows).
	MirrorVertical
)

func (m MirrorType) String() string {
	switch m {
	case MirrorHorizontal:
		return "Horizontal"
	case MirrorVertical:
		return "Vertical"
	default:
		return "None"
	}
}

// ParseFileFormat parses a format name case-insensitively. Unknown names are
// a configuration error.
func ParseFileFormat(name string) (FileFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "JPG":
		return JPG, nil
	case "PNG":
		return PNG, nil
	}
	return JPG, newError(ErrConfiguration, nil, "file format %q not recognized (allowed values: %s)", name, AllowedFileFormats)
}

// ParseMirrorType parses a mirror name case-insensitively.
//
// Unlike ParseFileFormat, unknown names are not an error: they resolve to
// MirrorNone.
func ParseMirrorType(name string) MirrorType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "horizontal":
		return MirrorHorizontal
	case "vertical":
		return MirrorVertical
	default:
		return MirrorNone
	}
}
