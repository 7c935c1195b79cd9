// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rs/zerolog"

	"github.com/xonecas/textfield/internal/constants"
)

// Config is the root configuration structure.
type Config struct {
	Input InputConfig `toml:"input"`
	UI    UIConfig    `toml:"ui"`
	Log   LogConfig   `toml:"log"`
	Store StoreConfig `toml:"store"`
}

// InputConfig holds text field behaviour.
type InputConfig struct {
	BlinkIntervalMs int    `toml:"blink_interval_ms"`
	ClickIntervalMs int    `toml:"click_interval_ms"`
	WordWrap        bool   `toml:"word_wrap"`
	MaxLines        int    `toml:"max_lines"`
	MaxLength       int    `toml:"max_length"`
	Placeholder     string `toml:"placeholder"`
}

// BlinkInterval returns the cursor blink half-period.
func (c InputConfig) BlinkInterval() time.Duration {
	return time.Duration(c.BlinkIntervalMs) * time.Millisecond
}

// ClickInterval returns the window in which presses count as one multi-click.
func (c InputConfig) ClickInterval() time.Duration {
	return time.Duration(c.ClickIntervalMs) * time.Millisecond
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma theme. Field colours are derived from it via
	// highlight.ThemePalette.
	SyntaxTheme string `toml:"syntax_theme"`
	// Language is the Chroma lexer for the multi-line field. Empty means
	// plain text.
	Language string `toml:"language"`
	// ShowWhitespace draws spaces in the multi-line field as middle dots.
	ShowWhitespace bool `toml:"show_whitespace"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	// File is where logs go. Empty means textfield.log in the data directory.
	File string `toml:"file"`
}

// StoreConfig holds draft storage settings.
type StoreConfig struct {
	// Path is the SQLite database file. Empty means drafts.db in the data
	// directory.
	Path string `toml:"path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			BlinkIntervalMs: int(constants.BlinkInterval / time.Millisecond),
			ClickIntervalMs: int(constants.ClickInterval / time.Millisecond),
			WordWrap:        true,
			MaxLines:        constants.MaxLines,
			Placeholder:     "Type here",
		},
		UI:  UIConfig{SyntaxTheme: constants.SyntaxTheme},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from a TOML file over the defaults and applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Input.BlinkIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("input.blink_interval_ms=%d must be positive", c.Input.BlinkIntervalMs))
	}
	if c.Input.ClickIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("input.click_interval_ms=%d must be positive", c.Input.ClickIntervalMs))
	}
	if c.Input.MaxLines < 1 {
		errs = append(errs, fmt.Errorf("input.max_lines=%d must be at least 1", c.Input.MaxLines))
	}
	if c.Input.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("input.max_length=%d must not be negative", c.Input.MaxLength))
	}

	if c.UI.SyntaxTheme != "" {
		if _, ok := styles.Registry[c.UI.SyntaxTheme]; !ok {
			errs = append(errs, fmt.Errorf("ui.syntax_theme=%q is not a known theme", c.UI.SyntaxTheme))
		}
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// SyntaxThemeOrDefault returns the configured syntax theme or the default if
// unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return constants.SyntaxTheme
	}
	return u.SyntaxTheme
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"TEXTFIELD_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
		{"TEXTFIELD_STORE_PATH", func(v string) {
			if v != "" {
				cfg.Store.Path = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the data directory (~/.config/textfield).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textfield"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
