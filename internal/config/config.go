// Package config resolves harmonia's settings from defaults, an optional .env
// file and HARMONIA_* environment variables. Command-line flags are applied on
// top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/harmonia/internal/seed"
)

// Environment variables read by WithEnv.
const (
	EnvFormat   = "HARMONIA_FORMAT"
	EnvPreview  = "HARMONIA_PREVIEW"
	EnvSeedMode = "HARMONIA_SEED_MODE"
	EnvSeed     = "HARMONIA_SEED"
	EnvNames    = "HARMONIA_NAMES"
)

// DefaultDotEnv is the .env file consulted by the CLI.
const DefaultDotEnv = ".env"

// Output selects how command results are written.
type Output string

const (
	OutputHex  Output = "hex"
	OutputRGB  Output = "rgb"
	OutputJSON Output = "json"
)

// ParseOutput validates an output name.
func ParseOutput(s string) (Output, error) {
	o := Output(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains([]Output{OutputHex, OutputRGB, OutputJSON}, o) {
		return o, nil
	}
	return "", fmt.Errorf("invalid output format: %s (valid: hex, rgb, json)", s)
}

// PreviewMode controls when colour swatches are drawn.
type PreviewMode string

const (
	PreviewAuto   PreviewMode = "auto"   // only when stdout is a terminal
	PreviewAlways PreviewMode = "always"
	PreviewNever  PreviewMode = "never"
)

// ParsePreviewMode validates a preview mode. "true"/"false" are accepted as
// aliases for always/never.
func ParsePreviewMode(s string) (PreviewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return PreviewAuto, nil
	case "always", "true", "on":
		return PreviewAlways, nil
	case "never", "false", "off":
		return PreviewNever, nil
	default:
		return "", fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", s)
	}
}

// Config holds resolved settings.
type Config struct {
	Output    Output
	Preview   PreviewMode
	SeedMode  seed.Mode
	Seed      *uint64
	NamesFile string // empty means the built-in dataset
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Output:   OutputHex,
		Preview:  PreviewAuto,
		SeedMode: seed.ModeRandom,
	}
}

// SeedConfig converts the seed settings for the seed package.
func (c Config) SeedConfig() seed.Config {
	return seed.Config{Mode: c.SeedMode, Value: c.Seed}
}

// Validate checks combinations that individual parsers cannot.
func (c Config) Validate() error {
	if c.SeedMode == seed.ModeManual && c.Seed == nil {
		return fmt.Errorf("seed mode %q requires %s or --seed", seed.ModeManual, EnvSeed)
	}
	return nil
}

// Builder provides a fluent interface for loading a Config.
type Builder struct {
	config     Config
	useEnv     bool
	dotEnvPath string
}

// NewBuilder creates a builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithConfig replaces the starting configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnv reads the HARMONIA_* environment variables.
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// WithDotEnv reads variables from a .env file at path. Values already set in
// the process environment take precedence when non-empty. A missing file is
// ignored.
func (b *Builder) WithDotEnv(path string) *Builder {
	b.dotEnvPath = path
	return b
}

// Build resolves the configuration. Validate is left to the caller so that
// flags can still supply missing values.
func (b *Builder) Build() (Config, error) {
	config := b.config

	values := map[string]string{}
	if b.dotEnvPath != "" {
		file, err := godotenv.Read(b.dotEnvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", b.dotEnvPath, err)
		}
		for k, v := range file {
			values[k] = v
		}
	}
	if b.useEnv {
		for _, key := range []string{EnvFormat, EnvPreview, EnvSeedMode, EnvSeed, EnvNames} {
			if v := os.Getenv(key); v != "" {
				values[key] = v
			}
		}
	}

	if err := apply(&config, values); err != nil {
		return Config{}, err
	}
	return config, nil
}

func apply(config *Config, values map[string]string) error {
	if v := values[EnvFormat]; v != "" {
		out, err := ParseOutput(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		config.Output = out
	}
	if v := values[EnvPreview]; v != "" {
		mode, err := ParsePreviewMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPreview, err)
		}
		config.Preview = mode
	}
	if v := values[EnvSeedMode]; v != "" {
		mode, err := seed.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeedMode, err)
		}
		config.SeedMode = mode
	}
	if v := values[EnvSeed]; v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid seed %q: %w", EnvSeed, v, err)
		}
		config.Seed = &n
	}
	if v := values[EnvNames]; v != "" {
		config.NamesFile = v
	}
	return nil
}
