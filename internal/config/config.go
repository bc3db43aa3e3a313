// Package config loads the run configuration of the basins command from
// YAML and validates it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/basins/basin"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultInput is the puzzle input read when no path is given.
const DefaultInput = "data/day09/input.txt"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one run. Zero-valued fields in a file keep
// their defaults.
type Config struct {
	// Input is the height map path; "-" reads standard input.
	Input string `yaml:"input"`
	// Format selects the output: "text" or "yaml".
	Format string `yaml:"format"`
	// TopK is how many of the largest basins are multiplied.
	TopK int `yaml:"topK"`
	// MaxBasinSize, if > 0, fails the run when a basin grows larger.
	MaxBasinSize int `yaml:"maxBasinSize"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:    DefaultInput,
		Format:   FormatText,
		TopK:     basin.DefaultTopK,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads name from fsys on top of Default. Unknown keys are rejected.
func Load(fsys fs.FS, name string) (Config, error) {
	cfg := Default()
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", name, err)
	}
	if err = yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", name, err)
	}
	return cfg, cfg.Validate()
}

// LoadFile is Load for a path on the local file system.
func LoadFile(path string) (Config, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	case c.Format != FormatText && c.Format != FormatYAML:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	case c.TopK < 1:
		return fmt.Errorf("%w: topK must be positive, got %d", ErrInvalidConfig, c.TopK)
	case c.MaxBasinSize < 0:
		return fmt.Errorf("%w: maxBasinSize cannot be negative, got %d", ErrInvalidConfig, c.MaxBasinSize)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// AnalyzerOptions translates the settings into basin options.
func (c Config) AnalyzerOptions(log logrus.FieldLogger) []basin.Option {
	return []basin.Option{
		basin.WithTopK(c.TopK),
		basin.WithMaxBasinSize(c.MaxBasinSize),
		basin.WithLogger(log),
	}
}
