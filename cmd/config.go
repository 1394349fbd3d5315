package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var configFile = flag.String("config", "", "Path to the config file (defaults to $HOME/.folio.yaml)")

// Config holds the tool's optional defaults, read from a YAML file.
// Every field can be overridden by a command flag.
type Config struct {
	// Input is the default transactions export to read.
	Input string `yaml:"input"`
	// Warnings enables the warnings section of the report by default.
	Warnings bool `yaml:"warnings"`
}

// loadConfig reads the config file named by -config, or $HOME/.folio.yaml
// when the flag is unset. A missing file is not an error: it yields the
// zero configuration.
func loadConfig() (Config, error) {
	var cfg Config

	path := *configFile
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".folio.yaml")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	return cfg, nil
}
