package photos

// RunConfig holds the resolved settings for one run. It is built once by
// Resolve and passed by value afterwards.
type RunConfig struct {
	// SourceDir is the directory scanned for photos.
	SourceDir string
	// Format selects both the input extension and the output encoder.
	Format FileFormat
	// Mirror is the transform applied to every photo.
	Mirror MirrorType
	// Quality is the JPEG quality level (0-100). PNG output ignores it.
	Quality int
	// Prefix is prepended to the index in every output file name.
	Prefix string
	// LegacyExtension names every output file .jpg regardless of Format.
	LegacyExtension bool
	// TagOriginalName records the source file name in each output's metadata.
	TagOriginalName bool
}

// Run is a resolved configuration together with the derived output directory
// and the photos found in the source directory.
type Run struct {
	Config RunConfig
	// OutputDir is where transformed photos are written. Resolve only computes
	// it; EnsureOutputDir creates it.
	OutputDir string
	// Photos lists the matching source files in enumeration order.
	Photos []string
}

// ProgressEvent represents a progress update while transforming photos.
type ProgressEvent struct {
	// Stage is the current processing stage ("transforming").
	Stage string
	// Current is the 1-based number of the photo being processed.
	Current int
	// Total is the number of photos in the run.
	Total int
	// Message is a human-readable description of the current operation.
	Message string
	// File is the source path of the photo being processed.
	File string
}
