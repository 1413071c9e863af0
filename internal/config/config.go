// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolo configuration. Only shell behavior is configurable;
// contact data itself never touches the filesystem.
type Config struct {
	Shell Shell `yaml:"shell"`
}

// Shell holds interactive shell settings.
type Shell struct {
	Prompt     string `yaml:"prompt"`     // Command prompt text
	Plain      bool   `yaml:"plain"`      // Force plain line mode even on a TTY
	Scrollback int    `yaml:"scrollback"` // TUI history lines kept in memory
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Shell: Shell{
			Prompt:     "> ",
			Plain:      false,
			Scrollback: 500,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// ErrInvalid indicates a config value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Shell.Prompt == "" {
		return fmt.Errorf("%w: shell.prompt cannot be empty", ErrInvalid)
	}
	if c.Shell.Scrollback < 0 {
		return fmt.Errorf("%w: shell.scrollback must be non-negative, got %d", ErrInvalid, c.Shell.Scrollback)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLO_PROMPT, ROLO_PLAIN, ROLO_SCROLLBACK.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLO_PROMPT"); v != "" {
		c.Shell.Prompt = v
	}
	if v := os.Getenv("ROLO_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_PLAIN %q: %w", v, err)
		}
		c.Shell.Plain = b
	}
	if v := os.Getenv("ROLO_SCROLLBACK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_SCROLLBACK %q: %w", v, err)
		}
		c.Shell.Scrollback = n
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Shell *rawShell `yaml:"shell"`
}

type rawShell struct {
	Prompt     *string `yaml:"prompt"`
	Plain      *bool   `yaml:"plain"`
	Scrollback *int    `yaml:"scrollback"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Shell != nil {
		if layer.Shell.Prompt != nil {
			c.Shell.Prompt = *layer.Shell.Prompt
		}
		if layer.Shell.Plain != nil {
			c.Shell.Plain = *layer.Shell.Plain
		}
		if layer.Shell.Scrollback != nil {
			c.Shell.Scrollback = *layer.Shell.Scrollback
		}
	}
}
