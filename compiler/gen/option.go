package gen

import (
	"errors"
	"log/slog"
	"strings"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
// When set, all files are written to this directory instead of next to
// their entity.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithWorkers sets the number of entities generated in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithPatterns adds package patterns to load entities from.
func WithPatterns(patterns ...string) Option {
	return func(c *Config) error {
		for _, p := range patterns {
			if strings.TrimSpace(p) == "" {
				return NewConfigError("Patterns", nil, "pattern cannot be empty")
			}
		}
		c.Patterns = append(c.Patterns, patterns...)
		return nil
	}
}

// WithBuildFlags sets custom build flags for loading entity packages.
func WithBuildFlags(flags ...string) Option {
	return func(c *Config) error {
		c.BuildFlags = append(c.BuildFlags, flags...)
		return nil
	}
}

// WithTag sets the struct tag key holding field markers.
func WithTag(key string) Option {
	return func(c *Config) error {
		if key == "" || strings.ContainsAny(key, " \t:\"`") {
			return NewConfigError("Tag", key, "invalid struct tag key")
		}
		c.Tag = key
		return nil
	}
}

// WithRenderer sets the renderer used to produce Go files.
func WithRenderer(r Renderer) Option {
	return func(c *Config) error {
		if r == nil {
			return NewConfigError("Renderer", nil, "renderer cannot be nil")
		}
		c.Renderer = r
		return nil
	}
}

// WithLogger sets the logger used during generation.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithConfigFile applies the settings of a YAML configuration file.
func WithConfigFile(path string) Option {
	return func(c *Config) error {
		opts, err := ReadConfigFile(path)
		if err != nil {
			return NewConfigError("ConfigFile", path, err.Error())
		}
		return c.Apply(opts...)
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
