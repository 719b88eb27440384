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

// Config holds all rolodex configuration.
type Config struct {
	Reminder Reminder `yaml:"reminder"`
	UI       UI       `yaml:"ui"`
}

// Reminder holds upcoming-birthday query settings.
type Reminder struct {
	Window int `yaml:"window"` // Days ahead scanned by the birthdays command.
}

// UI holds interactive session display settings.
type UI struct {
	Plain  bool   `yaml:"plain"`  // Force plain text output even on a TTY.
	Prompt string `yaml:"prompt"` // Prompt shown before each command.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Reminder: Reminder{
			Window: 7,
		},
		UI: UI{
			Plain:  false,
			Prompt: "Enter a command: ",
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

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Reminder.Window <= 0 {
		return fmt.Errorf("config: reminder.window must be positive, got %d", c.Reminder.Window)
	}
	if c.UI.Prompt == "" {
		return errors.New("config: ui.prompt cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_WINDOW, ROLODEX_PLAIN, ROLODEX_PROMPT.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_WINDOW %q: %w", v, err)
		}
		c.Reminder.Window = n
	}
	if v := os.Getenv("ROLODEX_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = b
	}
	if v := os.Getenv("ROLODEX_PROMPT"); v != "" {
		c.UI.Prompt = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Reminder *rawReminder `yaml:"reminder"`
	UI       *rawUI       `yaml:"ui"`
}

type rawReminder struct {
	Window *int `yaml:"window"`
}

type rawUI struct {
	Plain  *bool   `yaml:"plain"`
	Prompt *string `yaml:"prompt"`
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
	if layer.Reminder != nil {
		if layer.Reminder.Window != nil {
			c.Reminder.Window = *layer.Reminder.Window
		}
	}
	if layer.UI != nil {
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
		if layer.UI.Prompt != nil {
			c.UI.Prompt = *layer.UI.Prompt
		}
	}
}
