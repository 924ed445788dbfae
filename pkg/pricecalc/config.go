package pricecalc

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "PRICECALC_CONFIG"

// Config is the optional TOML file read at start-up.
//
//	output_suffix = "_已计算"
//	quiet = false
type Config struct {
	OutputSuffix string `toml:"output_suffix"`
	Quiet        bool   `toml:"quiet"`
}

// LoadConfig reads the config file at path. When path is empty the
// PRICECALC_CONFIG environment variable is used instead, and a missing
// file there is not an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Apply overlays the config onto opts.
func (c Config) Apply(opts Options) Options {
	if c.OutputSuffix != "" {
		opts.OutputSuffix = c.OutputSuffix
	}
	if c.Quiet {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return opts
}
