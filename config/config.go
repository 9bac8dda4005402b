// Package config loads user-level defaults for the command line from an
// XDG config file. Everything in it is optional; a missing file yields the
// zero configuration.
package config

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// configPath is the file looked up under the XDG config directories.
const configPath = "gledger/config.yaml"

// Config holds the user's defaults.
type Config struct {
	// Journal is the journal file used when no argument and no
	// $LEDGER_FILE are given.
	Journal string `yaml:"journal"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`
}

// Load reads the configuration file, if one exists. A missing file is not
// an error.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(configPath)
	if err != nil {
		// No config file anywhere on the search path.
		return &Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads and parses a configuration file at an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "os.ReadFile")
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "yaml.Unmarshal %s", path)
	}

	return &c, nil
}
