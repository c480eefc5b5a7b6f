package photos

import (
	"os"
	"path/filepath"
	"time"

	"github.com/acm19/phototransformer/internal/logger"
)

const (
	outputDirPrefix = "Transformed-"
	// outputDirLayout is YYYYMMDD-HHmm.
	outputDirLayout = "20060102-1504"
)

// OutputDirName returns the output directory name for a run started at t.
func OutputDirName(t time.Time) string {
	return outputDirPrefix + t.Format(outputDirLayout)
}

// OutputDirPath returns the output directory for a run started at t under sourceDir.
func OutputDirPath(sourceDir string, t time.Time) string {
	return filepath.Join(sourceDir, OutputDirName(t))
}

// EnsureOutputDir creates the output directory if it does not exist yet.
func EnsureOutputDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newError(ErrEncodeOrWrite, err, "failed to create output directory %s", path)
	}
	logger.Debug("Output directory ready", "path", path)
	return nil
}
