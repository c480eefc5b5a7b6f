package photos

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultFileFormat = "JPG"
	defaultQuality    = 90
	defaultPrefix     = "photo"
	defaultMirror     = "None"
)

// Settings are the raw, unvalidated values read from a settings file and
// the command line. Resolve turns them into a Run.
type Settings struct {
	Directory       string `toml:"directory"`
	FileFormat      string `toml:"file_format"`
	Quality         int    `toml:"quality"`
	Prefix          string `toml:"prefix"`
	Mirror          string `toml:"mirror"`
	LegacyExtension bool   `toml:"legacy_extension"`
	TagOriginalName bool   `toml:"tag_original_name"`
}

// DefaultSettings returns Settings populated with repository defaults.
func DefaultSettings() Settings {
	return Settings{
		FileFormat: defaultFileFormat,
		Quality:    defaultQuality,
		Prefix:     defaultPrefix,
		Mirror:     defaultMirror,
	}
}

// DefaultSettingsPath returns the default settings file location.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "phototransformer", "config.toml"), nil
}

// LoadSettings reads settings from path on top of the defaults. An empty path
// tries the default location and then phototransformer.toml in the working
// directory. A missing file is not an error; the returned path is empty then.
func LoadSettings(path string) (Settings, string, error) {
	settings := DefaultSettings()

	resolved, err := resolveSettingsPath(path)
	if err != nil {
		return settings, "", err
	}
	if resolved == "" {
		return settings, "", nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return settings, "", newError(ErrConfiguration, err, "open settings")
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&settings); err != nil {
		return settings, "", newError(ErrConfiguration, err, "parse settings %s", resolved)
	}

	settings.Directory = expandHome(settings.Directory)
	return settings, resolved, nil
}

func resolveSettingsPath(path string) (string, error) {
	if path != "" {
		expanded := expandHome(path)
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", newError(ErrConfiguration, nil, "settings file %s does not exist", expanded)
			}
			return "", newError(ErrConfiguration, err, "stat settings")
		}
		return expanded, nil
	}

	candidates := []string{"phototransformer.toml"}
	if defaultPath, err := DefaultSettingsPath(); err == nil {
		candidates = append([]string{defaultPath}, candidates...)
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
