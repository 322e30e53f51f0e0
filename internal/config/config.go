// Package config holds the runtime settings for the playdeck CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// ContentDir is a directory of YAML games to load instead of the
	// built-in catalog. Empty means built-in.
	ContentDir string

	// LogPath receives debug logs. Empty discards them.
	LogPath string

	// Sound enables audio cues.
	Sound bool

	// AdvanceDelay overrides every game's post-answer delay when non-zero.
	AdvanceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Sound: true,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values. Malformed values are reported, not ignored.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if d := os.Getenv("PLAYDECK_CONTENT_DIR"); d != "" {
		cfg.ContentDir = d
	}
	if p := os.Getenv("PLAYDECK_LOG"); p != "" {
		cfg.LogPath = p
	}
	if s := os.Getenv("PLAYDECK_SOUND"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("PLAYDECK_SOUND: %w", err)
		}
		cfg.Sound = b
	}
	if s := os.Getenv("PLAYDECK_ADVANCE_DELAY"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("PLAYDECK_ADVANCE_DELAY: %w", err)
		}
		cfg.AdvanceDelay = d
	}

	return cfg, nil
}

// Validate checks that the configured paths and durations are usable.
func (c Config) Validate() error {
	if c.AdvanceDelay < 0 {
		return fmt.Errorf("advance delay must not be negative, got %s", c.AdvanceDelay)
	}
	if c.AdvanceDelay > time.Minute {
		return fmt.Errorf("advance delay %s is longer than a minute", c.AdvanceDelay)
	}
	if c.ContentDir != "" {
		info, err := os.Stat(c.ContentDir)
		if err != nil {
			return fmt.Errorf("content dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("content dir %s is not a directory", c.ContentDir)
		}
	}
	return nil
}
