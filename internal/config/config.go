// Package config loads presentation defaults for the tm CLI.
//
// Precedence is built-in defaults, then the user config file, then TM_*
// environment variables; command-line flags override all of these at the
// command layer. Machine semantics (initial and halting labels) are never
// configured here; those belong to the rule file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultStepTime is the pause between automatic steps.
const DefaultStepTime = 250 * time.Millisecond

// Duration wraps time.Duration so TOML values can be written as "250ms" or
// "1s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for toml decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config holds the CLI's presentation defaults.
type Config struct {
	// StepTime is the delay between automatic steps.
	StepTime Duration `toml:"step_time"`

	// Live enables the single-line live display by default.
	Live bool `toml:"live"`

	// History controls whether completed runs are recorded.
	History bool `toml:"history"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StepTime: Duration{DefaultStepTime},
		History:  true,
	}
}

// Path returns the user config file location under the OS config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "tm", "config.toml"), nil
}

// Load returns the effective configuration. A missing config file is not an
// error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			if _, err := toml.Decode(string(data), &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(readErr):
			return cfg, fmt.Errorf("reading %s: %w", path, readErr)
		}
	}

	applyEnv(&cfg)

	if cfg.StepTime.Duration < 0 {
		return cfg, fmt.Errorf("step_time must not be negative, is %s", cfg.StepTime.Duration)
	}
	return cfg, nil
}
