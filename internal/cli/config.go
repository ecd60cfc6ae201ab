package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/render"
)

// Config is the optional YAML file passed with --config.
type Config struct {
	LogLevel string `yaml:"log_level"`

	Search struct {
		StrictVisits bool `yaml:"strict_visits"`
	} `yaml:"search"`

	Render struct {
		CellPixels int `yaml:"cell_pixels"`
	} `yaml:"render"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
}

// DefaultConfig is used when no config file is given, and fills every key a
// config file leaves out.
func DefaultConfig() Config {
	var c Config
	c.LogLevel = "info"
	c.Render.CellPixels = render.DefaultCellPixels
	c.Metrics.Port = 9090
	return c
}

// LoadConfig reads a YAML config over DefaultConfig. An empty path returns
// the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseLevel accepts debug, info, warn and error in any case.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
