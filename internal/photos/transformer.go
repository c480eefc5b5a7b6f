package photos

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/acm19/phototransformer/internal/logger"
)

// TransformOptions holds optional collaborators for a run.
type TransformOptions struct {
	// OnProgress, if set, is called before each photo is transformed.
	OnProgress func(ProgressEvent)
	// ExifWriter records source file names when the run has TagOriginalName
	// set. It must be non-nil in that case.
	ExifWriter ExifWriter
}

// Result summarises a completed run.
type Result struct {
	// Outputs lists the written files in source order.
	Outputs []string
	// Duration is the wall time spent transforming.
	Duration time.Duration
}

// Transformer defines the interface for transforming the photos of a run
type Transformer interface {
	// Transform decodes, mirrors, encodes and saves every photo of run, one
	// at a time. The first failure stops the run; files written before it
	// are kept.
	Transform(run *Run, opts TransformOptions) (*Result, error)
}

// transformer implements the Transformer interface
type transformer struct {
	codec      Codec
	extensions Extensions
}

// NewTransformer creates a new Transformer instance
func NewTransformer() Transformer {
	return NewTransformerWithCodec(NewCodec())
}

// NewTransformerWithCodec creates a new Transformer using codec
func NewTransformerWithCodec(codec Codec) Transformer {
	return &transformer{
		codec:      codec,
		extensions: NewExtensions(),
	}
}

// Transform processes every photo of run in order.
func (t *transformer) Transform(run *Run, opts TransformOptions) (*Result, error) {
	cfg := run.Config
	if cfg.TagOriginalName && opts.ExifWriter == nil {
		return nil, newError(ErrConfiguration, nil, "original name tagging requested without an exif writer")
	}

	if err := EnsureOutputDir(run.OutputDir); err != nil {
		return nil, err
	}

	start := time.Now()
	total := len(run.Photos)
	result := &Result{Outputs: make([]string, 0, total)}

	logger.Info("Transforming photos", "count", total, "format", cfg.Format, "mirror", cfg.Mirror, "output", run.OutputDir)
	for i, src := range run.Photos {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{
				Stage:   "transforming",
				Current: i + 1,
				Total:   total,
				Message: fmt.Sprintf("Transforming photo %d of %d", i+1, total),
				File:    src,
			})
		}

		dst := filepath.Join(run.OutputDir, t.extensions.OutputName(cfg.Prefix, i, cfg.Format, cfg.LegacyExtension))
		if err := t.transformPhoto(cfg, src, dst); err != nil {
			return result, err
		}

		if cfg.TagOriginalName {
			if _, err := opts.ExifWriter.WriteOriginalFileNameIfMissing(dst, cfg.Format, filepath.Base(src)); err != nil {
				return result, newError(ErrEncodeOrWrite, err, "failed to tag %s", dst)
			}
		}

		result.Outputs = append(result.Outputs, dst)
	}

	result.Duration = time.Since(start)
	logger.Info("Transformation completed", "photos", len(result.Outputs), "duration_seconds", result.Duration.Seconds())
	return result, nil
}

// transformPhoto runs decode, mirror, encode and save for a single photo.
func (t *transformer) transformPhoto(cfg RunConfig, src, dst string) error {
	logger.Debug("Transforming photo", "from", src, "to", dst)

	img, err := t.decodeFile(src, cfg.Format)
	if err != nil {
		return err
	}

	mirrored := Mirror(img, cfg.Mirror)

	var buf bytes.Buffer
	if err := t.codec.Encode(&buf, mirrored, cfg.Format, cfg.Quality); err != nil {
		return newError(ErrEncodeOrWrite, err, "failed to encode %s", src)
	}

	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return newError(ErrEncodeOrWrite, err, "failed to save %s", dst)
	}

	logger.Debug("Photo saved", "path", dst, "bytes", buf.Len())
	return nil
}

func (t *transformer) decodeFile(path string, format FileFormat) (image.Image, error) {
	if err := isValidFile(path); err != nil {
		return nil, newError(ErrDecode, err, "%s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, newError(ErrDecode, err, "failed to open %s", path)
	}
	defer file.Close()

	img, err := t.codec.Decode(file, format)
	if err != nil {
		return nil, newError(ErrDecode, err, "%s is not a valid %s image", path, format)
	}
	return img, nil
}
