package config

import (
	"fmt"
	"time"
)

// Settings validation constants
const (
	MinInterval = 10 * time.Millisecond // fastest sensible redraw
	MaxInterval = time.Minute           // slower than this and the display lies

	// Default values
	DefaultInterval = 1 * time.Second
	DefaultLogLevel = "error"
)

// Settings holds the per-invocation runtime settings. They come
// entirely from command-line flags: alrm reads no configuration files
// and consults no environment variables.
type Settings struct {
	Update   bool          // live countdown instead of a single report
	Interval time.Duration // live-countdown tick interval
	LogLevel string        // debug, info, warn, error
}

// New builds Settings from flag values, applying defaults and
// validating the result.
func New(update bool, interval time.Duration, logLevel string) (*Settings, error) {
	s := &Settings{
		Update:   update,
		Interval: interval,
		LogLevel: logLevel,
	}

	applyDefaults(s)

	if err := validate(s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// applyDefaults sets default values for unset settings
func applyDefaults(s *Settings) {
	if s.Interval == 0 {
		s.Interval = DefaultInterval
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
}

// validate validates the settings
func validate(s *Settings) error {
	if s.Interval < 0 {
		return fmt.Errorf("interval must be positive, got %s", s.Interval)
	}

	if s.Interval < MinInterval {
		return fmt.Errorf("interval must be at least %s, got %s", MinInterval, s.Interval)
	}

	if s.Interval > MaxInterval {
		return fmt.Errorf("interval must not exceed %s, got %s", MaxInterval, s.Interval)
	}

	switch s.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error; got %q", s.LogLevel)
	}

	return nil
}
