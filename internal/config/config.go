// Package config loads the optional project configuration for pgrep.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/gitpan/pgrep/internal/category"
)

var (
	// ErrUnknownCategory indicates a configured default category that is
	// not registered.
	ErrUnknownCategory = errors.New("invalid config: unknown category")

	// ErrInvalidGlob indicates a path pattern that does not compile.
	ErrInvalidGlob = errors.New("invalid config: bad glob pattern")
)

// Config is the pgrep configuration. It can be loaded from .pgrep.yml
// with environment variable overrides.
type Config struct {
	Search SearchConfig `yaml:"search" mapstructure:"search"`
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
}

// SearchConfig sets search defaults applied when flags are absent.
type SearchConfig struct {
	Categories  []string `yaml:"categories" mapstructure:"categories"`   // default token categories
	Diagnostics bool     `yaml:"diagnostics" mapstructure:"diagnostics"` // report skipped files
}

// PathsConfig defines which files to search and which to skip.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns to search; empty = all supported extensions
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Categories: []string{"quote", "heredoc"},
		},
		Paths: PathsConfig{
			Include: nil, // all supported source extensions
			Ignore: []string{
				".git/**",
				"node_modules/**",
				"vendor/**",
				"blib/**",
				"target/**",
				"__pycache__/**",
			},
		},
	}
}

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	for _, name := range cfg.Search.Categories {
		if !category.IsKnown(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCategory, name))
		}
	}

	for _, pattern := range append(append([]string(nil), cfg.Paths.Include...), cfg.Paths.Ignore...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidGlob, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

// joinErrors combines multiple errors into a single error with clear
// formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
