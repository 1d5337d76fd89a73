package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hammamikhairi/ottodish/internal/display"
	"github.com/hammamikhairi/ottodish/internal/extract"
	"github.com/hammamikhairi/ottodish/internal/logger"
)

// Validate checks all configuration values and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := logger.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	if strings.TrimSpace(c.Template.Vocabulary) == "" {
		errs = append(errs, errors.New("template.vocabulary is required"))
	}
	if _, err := extract.ParseBulletMode(c.Template.BulletMode); err != nil {
		errs = append(errs, fmt.Errorf("template.bullet_mode: %w", err))
	}

	if _, ok := display.NormalizeFormat(c.Output.Format); !ok {
		errs = append(errs, fmt.Errorf("output.format: must be one of %s, got %q",
			strings.Join(display.Formats(), ", "), c.Output.Format))
	}
	if c.Output.Width < 0 {
		errs = append(errs, fmt.Errorf("output.width must be >= 0, got %d", c.Output.Width))
	}

	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be >= 1, got %d", c.Batch.Workers))
	}

	if _, err := filepath.Match(c.Watch.Pattern, "x"); err != nil || c.Watch.Pattern == "" {
		errs = append(errs, fmt.Errorf("watch.pattern: invalid glob %q", c.Watch.Pattern))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must be >= 0, got %s", c.Watch.Debounce))
	}

	return errors.Join(errs...)
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logger.Level {
	lvl, _ := logger.ParseLevel(c.Log.Level)
	return lvl
}

// BulletMode returns the parsed bullet mode.
func (c *Config) BulletMode() extract.BulletMode {
	m, _ := extract.ParseBulletMode(c.Template.BulletMode)
	return m
}
