package config

import (
	"os"
	"path/filepath"

	unfurlerrors "github.com/arthur-debert/unfurl/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// WriteUserConfig renders cfg as TOML and writes it to path, creating
// parent directories as needed. An existing file is only replaced when
// force is set.
func WriteUserConfig(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return unfurlerrors.Newf(unfurlerrors.ErrInvalidInput, "config file already exists: %s (use --force to overwrite)", path)
	}

	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return unfurlerrors.Wrap(err, unfurlerrors.ErrConfigParse, "failed to render configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return unfurlerrors.Wrapf(err, unfurlerrors.ErrConfigLoad, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return unfurlerrors.Wrapf(err, unfurlerrors.ErrConfigLoad, "failed to write %s", path)
	}
	return nil
}
