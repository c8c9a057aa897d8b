// Package config resolves resdiff settings with explicit priority order:
// CLI flags > environment variables > .resdiff.yaml > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jbmorgado/resdiff/pkg/compare"
)

// Defaults for settings not provided by any source.
const (
	DefaultFormat = "auto"
	DefaultTheme  = "default"
)

// fileConfig mirrors the .resdiff.yaml layout. Pointer fields distinguish
// "absent" from zero values.
type fileConfig struct {
	Tolerance *float64 `yaml:"tolerance"`
	Format    string   `yaml:"format"`
	Theme     string   `yaml:"theme"`
}

// Config holds the resolved settings the CLI runs with.
type Config struct {
	Tolerance float64
	Format    string
	Theme     string
}

// Load resolves configuration from the environment and the first
// .resdiff.yaml found (working directory, then the user config directory).
// A missing file is normal; a malformed file degrades to defaults with a
// warning on stderr. Flag overrides are applied by the caller.
func Load() *Config {
	cfg := &Config{
		Tolerance: compare.DefaultTolerance,
		Format:    DefaultFormat,
		Theme:     DefaultTheme,
	}

	if path := configPath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "resdiff: warning: reading config %s: %v\n", path, err)
			}
		} else {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				fmt.Fprintf(os.Stderr, "resdiff: warning: parsing config %s: %v\n", path, err)
			} else {
				if fc.Tolerance != nil && *fc.Tolerance >= 0 {
					cfg.Tolerance = *fc.Tolerance
				}
				if fc.Format != "" {
					cfg.Format = fc.Format
				}
				if fc.Theme != "" {
					cfg.Theme = fc.Theme
				}
			}
		}
	}

	if theme := os.Getenv("RESDIFF_THEME"); theme != "" {
		cfg.Theme = theme
	}
	if format := os.Getenv("RESDIFF_FORMAT"); format != "" {
		cfg.Format = format
	}
	// NO_COLOR wins over any theme selection below the CLI.
	if os.Getenv("NO_COLOR") != "" {
		cfg.Theme = "mono"
	}

	return cfg
}

// configPath finds the first .resdiff.yaml: working directory first, then
// the user config directory (e.g. ~/.config/resdiff/.resdiff.yaml).
func configPath() string {
	local := ".resdiff.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "resdiff", ".resdiff.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
