// Package config loads unfurl's configuration.
//
// Configuration is layered: embedded defaults, then the user's config
// file from the XDG config directory, then UNFURL_* environment
// variables. Later layers win.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	unfurlerrors "github.com/arthur-debert/unfurl/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds all tunable behavior
type Config struct {
	// Mode is the default placement policy (subdir, flatten, respect)
	Mode string `koanf:"mode" toml:"mode"`

	// Clean enables junk-entry removal after placement
	Clean bool `koanf:"clean" toml:"clean"`

	// Backend selects the decompression service: archives or command
	Backend string `koanf:"backend" toml:"backend"`

	// Command is the template for the command backend
	Command string `koanf:"command" toml:"command"`

	// Ignored entry names never count as archive content
	Ignored []string `koanf:"ignored" toml:"ignored"`

	// Junk entry names are removed by the sanitizer
	Junk []string `koanf:"junk" toml:"junk"`
}

// rawBytesProvider implements koanf's provider interface for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// UserConfigPath returns the location of the user's config file
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "unfurl", "unfurl.toml")
}

// Load builds the effective configuration from defaults, the user
// config file (if present) and the environment.
func Load() (*Config, error) {
	return loadFrom(UserConfigPath())
}

func loadFrom(userConfigPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, unfurlerrors.Wrap(err, unfurlerrors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. User config file, when present
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, unfurlerrors.Wrapf(err, unfurlerrors.ErrConfigLoad, "failed to load config from %s", userConfigPath)
		}
	}

	// 3. Environment overrides: UNFURL_MODE=flatten etc.
	err := k.Load(env.Provider("UNFURL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "UNFURL_"))
	}), nil)
	if err != nil {
		return nil, unfurlerrors.Wrap(err, unfurlerrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, unfurlerrors.Wrap(err, unfurlerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// DefaultContent returns the embedded defaults file, used by genconfig
// as the starting point for a user config.
func DefaultContent() []byte {
	return defaultConfig
}
