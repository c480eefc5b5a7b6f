package main

import (
	"os"
	"time"

	"github.com/acm19/phototransformer/internal/logger"
	"github.com/acm19/phototransformer/internal/photos"
	"github.com/barasher/go-exiftool"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type cliOptions struct {
	configPath      string
	format          string
	quality         int
	prefix          string
	mirror          string
	legacyExtension bool
	tagOriginal     bool
	yes             bool
	noOpen          bool
	verbose         bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "phototransformer [SOURCE_DIR]",
		Short: "Mirror every photo in a directory",
		Long: `Phototransformer reads all JPG or PNG photos from a directory, optionally
mirrors them horizontally or vertically, and writes the results into a new
Transformed-<YYYYMMDD-HHmm> directory inside the source directory.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Settings file (TOML)")
	flags.StringVarP(&opts.format, "format", "f", "", "File format to read and write ("+photos.AllowedFileFormats+")")
	flags.IntVarP(&opts.quality, "quality", "q", 0, "JPEG quality (0-100)")
	flags.StringVarP(&opts.prefix, "prefix", "p", "", "Output filename prefix")
	flags.StringVarP(&opts.mirror, "mirror", "m", "", "Mirror type (None, Horizontal, Vertical)")
	flags.BoolVar(&opts.legacyExtension, "legacy-extension", false, "Always name output files .jpg, whatever the format")
	flags.BoolVar(&opts.tagOriginal, "tag-original", false, "Record the source file name in each output's metadata (requires exiftool)")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Do not wait for acknowledgement")
	flags.BoolVar(&opts.noOpen, "no-open", false, "Do not open the output folder when done")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runTransform(cmd *cobra.Command, args []string, opts *cliOptions) error {
	// stdout carries the console text and the rolling progress line
	logger.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		logger.SetDebug(true)
	}

	in := cmd.InOrStdin()
	reporter := newReporter(in, cmd.OutOrStdout(), isInteractive(in, opts.yes))

	run, err := resolveRun(cmd, args, opts)
	if err != nil {
		reporter.Failure(err)
		return err
	}

	reporter.Start(run)

	transformOpts := photos.TransformOptions{OnProgress: reporter.Progress}
	if run.Config.TagOriginalName {
		// Initialise exiftool only when tagging was requested
		et, err := exiftool.NewExiftool()
		if err != nil {
			logger.Error("Failed to initialise exiftool", "error", err)
			reporter.Failure(err)
			return err
		}
		defer et.Close()
		transformOpts.ExifWriter = photos.NewExifWriter(et)
	}

	result, err := photos.NewTransformer().Transform(run, transformOpts)
	if err != nil {
		logger.Error("Transformation failed", "error", err)
		reporter.Failure(err)
		return err
	}

	if !opts.noOpen {
		if err := openFolder(run.OutputDir); err != nil {
			logger.Warn("Could not open output folder", "path", run.OutputDir, "error", err)
		}
	}

	reporter.Done(result)
	return nil
}

// resolveRun loads the settings file, applies explicitly set flags and the
// positional directory on top, and resolves the run.
func resolveRun(cmd *cobra.Command, args []string, opts *cliOptions) (*photos.Run, error) {
	settings, path, err := photos.LoadSettings(opts.configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug("Loaded settings", "path", path)
	}

	applyFlags(cmd, &settings, opts, args)

	run, err := photos.NewResolver().Resolve(settings, time.Now())
	if err != nil {
		return nil, err
	}
	logger.Info("Resolved run", "source", run.Config.SourceDir, "output", run.OutputDir, "photos", len(run.Photos))
	return run, nil
}

// applyFlags overrides settings with the flags the user actually set.
func applyFlags(cmd *cobra.Command, settings *photos.Settings, opts *cliOptions, args []string) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		settings.FileFormat = opts.format
	}
	if flags.Changed("quality") {
		settings.Quality = opts.quality
	}
	if flags.Changed("prefix") {
		settings.Prefix = opts.prefix
	}
	if flags.Changed("mirror") {
		settings.Mirror = opts.mirror
	}
	if flags.Changed("legacy-extension") {
		settings.LegacyExtension = opts.legacyExtension
	}
	if flags.Changed("tag-original") {
		settings.TagOriginalName = opts.tagOriginal
	}
	if len(args) > 0 {
		settings.Directory = args[0]
	}
}
