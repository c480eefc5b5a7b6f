package photos

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// Codec decodes and encodes photos in a given container format.
type Codec interface {
	// Decode reads an image stored in format.
	Decode(r io.Reader, format FileFormat) (image.Image, error)
	// Encode writes img in format. quality only applies to JPG.
	Encode(w io.Writer, img image.Image, format FileFormat, quality int) error
}

// stdCodec implements Codec with the image/jpeg and image/png packages.
type stdCodec struct{}

// NewCodec creates a new Codec instance
func NewCodec() Codec {
	return &stdCodec{}
}

// Decode reads an image stored in format. Data in any other container is
// rejected even if it is a valid image.
func (c *stdCodec) Decode(r io.Reader, format FileFormat) (image.Image, error) {
	switch format {
	case JPG:
		return jpeg.Decode(r)
	case PNG:
		return png.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", format)
	}
}

// Encode writes img in format. JPEG quality is clamped to 1-100 by image/jpeg.
func (c *stdCodec) Encode(w io.Writer, img image.Image, format FileFormat, quality int) error {
	switch format {
	case JPG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case PNG:
		encoder := &png.Encoder{CompressionLevel: png.DefaultCompression}
		return encoder.Encode(w, img)
	default:
		return fmt.Errorf("unsupported file format: %s", format)
	}
}
