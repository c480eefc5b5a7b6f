package photos

import (
	"strings"
	"time"

	"github.com/acm19/phototransformer/internal/logger"
)

// Resolver turns raw settings into a Run.
type Resolver interface {
	// Resolve validates settings, derives the output directory for a run
	// started at now and lists the photos to transform. It only reads the
	// filesystem.
	Resolve(settings Settings, now time.Time) (*Run, error)
}

// resolver implements the Resolver interface
type resolver struct {
	enumerator FileEnumerator
}

// NewResolver creates a new Resolver instance
func NewResolver() Resolver {
	return NewResolverWithEnumerator(NewFileEnumerator())
}

// NewResolverWithEnumerator creates a Resolver that lists photos with enumerator
func NewResolverWithEnumerator(enumerator FileEnumerator) Resolver {
	return &resolver{enumerator: enumerator}
}

// Resolve validates settings and builds the Run.
func (r *resolver) Resolve(settings Settings, now time.Time) (*Run, error) {
	format, err := ParseFileFormat(settings.FileFormat)
	if err != nil {
		return nil, err
	}

	mirror := ParseMirrorType(settings.Mirror)
	if mirror == MirrorNone && strings.TrimSpace(settings.Mirror) != "" && !strings.EqualFold(strings.TrimSpace(settings.Mirror), MirrorNone.String()) {
		logger.Debug("Unrecognized mirror type, using None", "mirror", settings.Mirror)
	}

	if settings.Quality < 0 || settings.Quality > 100 {
		return nil, newError(ErrConfiguration, nil, "quality must be in range 0-100, got %d", settings.Quality)
	}

	if !isDirectory(settings.Directory) {
		return nil, newError(ErrConfiguration, nil, "photo directory does not exist: %q", settings.Directory)
	}

	cfg := RunConfig{
		SourceDir:       settings.Directory,
		Format:          format,
		Mirror:          mirror,
		Quality:         settings.Quality,
		Prefix:          settings.Prefix,
		LegacyExtension: settings.LegacyExtension,
		TagOriginalName: settings.TagOriginalName,
	}

	photos, err := r.enumerator.ListPhotos(cfg.SourceDir, cfg.Format)
	if err != nil {
		return nil, newError(ErrUnexpected, err, "failed to list photos")
	}

	return &Run{
		Config:    cfg,
		OutputDir: OutputDirPath(cfg.SourceDir, now),
		Photos:    photos,
	}, nil
}
