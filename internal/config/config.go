// Package config loads the sketchbook command's settings from a TOML or
// YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file extension")

// Config holds every setting of the command. Flags override file values.
type Config struct {
	// OutDir receives exported files.
	OutDir string `toml:"out_dir" yaml:"out_dir"`
	// Format is the default export format.
	Format string `toml:"format" yaml:"format"`
	// Frames is the number of Draw calls before exporting.
	Frames int `toml:"frames" yaml:"frames"`
	// Density is the canvas pixel density.
	Density float64 `toml:"density" yaml:"density"`
	// Listen is the HTTP address of the serve command.
	Listen string `toml:"listen" yaml:"listen"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// CompressPDF enables PDF stream compression.
	CompressPDF bool `toml:"compress_pdf" yaml:"compress_pdf"`
	// Names overrides the default file name per format.
	Names map[string]string `toml:"names" yaml:"names"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutDir:   ".",
		Format:   "svg",
		Frames:   1,
		Density:  1,
		Listen:   "localhost:8080",
		LogLevel: "info",
	}
}

// Load reads path over the defaults. The decoder is chosen by extension:
// .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("config: frames must not be negative, got %d", c.Frames))
	}
	if !(c.Density > 0) {
		errs = append(errs, fmt.Errorf("config: density must be positive, got %v", c.Density))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}

// Marshal encodes c in the format matching ext (".toml", ".yaml" or
// ".yml").
func (c Config) Marshal(ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Marshal(c)
	case ".yaml", ".yml":
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
}
