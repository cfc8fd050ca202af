package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/aasierra/acg/checksum"
	"github.com/aasierra/acg/report"
)

// Output modes.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultFormat mirrors the sha256sum line layout.
const DefaultFormat = report.DefaultFormat

// Config holds CLI settings.
type Config struct {
	Algorithm  string `yaml:"algorithm"`
	BufferSize int    `yaml:"buffer_size"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	LogLevel   string `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Algorithm:  string(checksum.SHA256),
		BufferSize: checksum.DefaultBufferSize,
		Format:     DefaultFormat,
		Output:     OutputText,
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path over Default. Unknown keys are
// rejected. An empty file yields the defaults.
func Load(path string) (Config, error) {
	const errCtx = "loading config"

	cfg := Default()

	fi, err := os.Open(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", errCtx, err)
	}

	defer fi.Close() //nolint:errcheck // read-only

	if err := decode(fi, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	return cfg, nil
}

// fileConfig mirrors Config with optional fields so that keys absent
// from the file leave the defaults untouched.
type fileConfig struct {
	Algorithm  *string `yaml:"algorithm"`
	BufferSize *int    `yaml:"buffer_size"`
	Format     *string `yaml:"format"`
	Output     *string `yaml:"output"`
	LogLevel   *string `yaml:"log_level"`
}

// decode applies the keys present in the YAML document to cfg. An
// empty or comment-only document changes nothing.
func decode(in io.Reader, cfg *Config) error {
	var fc fileConfig

	err := yaml.NewDecoder(in, yaml.Strict()).Decode(&fc)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if fc.Algorithm != nil {
		cfg.Algorithm = *fc.Algorithm
	}

	if fc.BufferSize != nil {
		cfg.BufferSize = *fc.BufferSize
	}

	if fc.Format != nil {
		cfg.Format = *fc.Format
	}

	if fc.Output != nil {
		cfg.Output = *fc.Output
	}

	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}

	return nil
}

// Validate checks field values and normalizes the algorithm name.
func (c *Config) Validate() error {
	const errCtx = "invalid config"

	alg := checksum.Normalize(c.Algorithm)
	if !alg.Available() {
		return fmt.Errorf(
			"%s: unknown algorithm %q", errCtx, c.Algorithm,
		)
	}

	c.Algorithm = string(alg)

	if strings.TrimSpace(c.Format) == "" {
		return fmt.Errorf("%s: format must not be empty", errCtx)
	}

	if c.BufferSize <= 0 {
		return fmt.Errorf(
			"%s: buffer_size must be positive, got %d",
			errCtx, c.BufferSize,
		)
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf(
			"%s: output must be %q or %q, got %q",
			errCtx, OutputText, OutputJSON, c.Output,
		)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level

	if err := lvl.UnmarshalText(
		[]byte(strings.TrimSpace(name)),
	); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}

	return lvl, nil
}
