// Package config loads settings for the mjson command-line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/mjson"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the mjson tool.
type Config struct {
	Parse ParseConfig `yaml:"parse"`
	Input InputConfig `yaml:"input"`
	Dev   DevConfig   `yaml:"dev"`
}

// ParseConfig controls the parser.
type ParseConfig struct {
	BufferSize int `yaml:"buffer_size"`
	MaxDepth   int `yaml:"max_depth"`
}

// InputConfig controls how input is read before parsing.
type InputConfig struct {
	// Accept JSON With Commas and Comments.
	JWCC bool `yaml:"jwcc"`
}

// DevConfig contains debug options.
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// configNames are the file names FindConfigFile looks for, in order.
var configNames = []string{".mjson.yml", ".mjson.yaml", "mjson.yml", "mjson.yaml"}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Parse: ParseConfig{
			BufferSize: mjson.DefaultBufferSize,
			MaxDepth:   mjson.DefaultMaxDepth,
		},
	}
}

// LoadConfig reads a YAML config file. Settings missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile searches dir and its ancestors for a config file, and
// returns the path of the first one found, or "" if there is none.
func FindConfigFile(dir string) string {
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Validate reports an error if c has invalid settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Parse.BufferSize < 1 {
		errs = append(errs, fmt.Errorf("buffer_size must be positive, got %d", c.Parse.BufferSize))
	}
	if c.Parse.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max_depth must be positive, got %d", c.Parse.MaxDepth))
	}
	return errors.Join(errs...)
}

// ParseOptions returns parser options for the settings in c.
func (c *Config) ParseOptions() *mjson.ParseOptions {
	return &mjson.ParseOptions{
		BufferSize: c.Parse.BufferSize,
		MaxDepth:   c.Parse.MaxDepth,
	}
}
