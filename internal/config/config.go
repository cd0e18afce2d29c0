// Package config provides YAML-based application configuration: color
// mode, prompt format, wrap width and theme overrides.
package config

import (
	"fmt"

	"github.com/ilyavolkan/tui-fable/internal/prompt"
	"github.com/ilyavolkan/tui-fable/internal/terminal"
	"github.com/ilyavolkan/tui-fable/internal/theme"
)

// Config is the user-facing configuration.
type Config struct {
	// Color controls styling: auto, always, or never.
	Color string `yaml:"color"`

	// Prompt is the prompt format string (see the prompt package tokens).
	Prompt string `yaml:"prompt"`

	// Width wraps output to this many columns; 0 means detect from the
	// terminal.
	Width int `yaml:"width"`

	// Theme overrides individual output categories. Categories not listed
	// keep the built-in style.
	Theme theme.Theme `yaml:"theme,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Color:  terminal.ModeAuto,
		Prompt: prompt.DefaultFormat,
		Width:  0,
	}
}

// Validate checks field values and the theme overrides.
func (c Config) Validate() error {
	if !terminal.ValidMode(c.Color) {
		return fmt.Errorf("config: color must be auto, always or never, got %q", c.Color)
	}
	if c.Width < 0 {
		return fmt.Errorf("config: width must be >= 0, got %d", c.Width)
	}
	if err := c.Theme.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// EffectiveTheme merges the config's overrides onto the default theme.
func (c Config) EffectiveTheme() theme.Theme {
	base := theme.Default()
	if len(c.Theme) == 0 {
		return base
	}
	return base.Merge(c.Theme)
}
