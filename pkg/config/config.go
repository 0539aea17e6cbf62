// Package config loads the tool's optional configuration file. The file
// lives in the XDG config directory as TOML; every key has a sensible
// default so running without a file is the common case.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/pst966/git/pkg/errors"
	"github.com/pst966/git/pkg/logging"
)

// Environment variable overrides, applied after file loading.
const (
	// EnvExcludesFile overrides the global excludes file path.
	EnvExcludesFile = "CHECK_IGNORE_EXCLUDES_FILE"

	// EnvNoGlobal disables the global excludes file when set non-empty.
	EnvNoGlobal = "CHECK_IGNORE_NO_GLOBAL"
)

// ConfigFileName is the configuration file name inside the XDG config dir.
const ConfigFileName = "config.toml"

// configDirName is the tool's directory under the XDG config root.
const configDirName = "check-ignore"

// Config is the tool configuration, read-only after loading.
type Config struct {
	// ExcludesFile is the lowest-precedence rule source consulted for
	// every path. Empty disables the global layer.
	ExcludesFile string `toml:"excludes_file"`

	// IgnoreCase enables case-insensitive rule matching.
	IgnoreCase bool `toml:"ignore_case"`

	// NoGlobal skips the global excludes file even when it exists.
	NoGlobal bool `toml:"no_global"`
}

// Default returns the configuration used when no file is present.
// The default global excludes file is the conventional XDG ignore file.
func Default() Config {
	return Config{
		ExcludesFile: filepath.Join(xdg.ConfigHome, "git", "ignore"),
	}
}

// Load reads the configuration file from the XDG config directory,
// falling back to defaults when absent, then applies environment
// overrides.
func Load() (Config, error) {
	return LoadFrom(filepath.Join(xdg.ConfigHome, configDirName, ConfigFileName))
}

// LoadFrom reads the configuration from an explicit path. A missing
// file yields defaults; a malformed file is a fatal configuration error.
func LoadFrom(path string) (Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Debug().Str("path", path).Msg("No config file, using defaults")
	case err != nil:
		return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path)
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config %s", path)
		}
		logger.Debug().Str("path", path).Msg("Config file loaded")
	}

	applyEnv(&cfg)

	if cfg.NoGlobal {
		cfg.ExcludesFile = ""
	}

	return cfg, nil
}

// applyEnv overlays environment overrides onto cfg.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvExcludesFile); ok {
		cfg.ExcludesFile = v
	}
	if os.Getenv(EnvNoGlobal) != "" {
		cfg.NoGlobal = true
	}
}
