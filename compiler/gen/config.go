package gen

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/specgen/compiler/load"
)

// DefaultHeader is the header comment of generated files.
const DefaultHeader = "Code generated by specgen. DO NOT EDIT."

// DefaultConfigFile is the configuration file looked up by the command line.
const DefaultConfigFile = "specgen.yaml"

// Config holds the configuration for code generation.
type Config struct {
	// Header is the comment placed at the top of each generated file.
	Header string
	// Target overrides the output directory. By default, files are written
	// next to the entity they were generated for.
	Target string
	// Workers limits the number of entities generated in parallel.
	Workers int
	// Patterns are the package patterns holding the entities.
	Patterns []string
	// BuildFlags are forwarded to the package loader.
	BuildFlags []string
	// Tag is the struct tag key holding field markers.
	Tag string

	// Renderer renders modules into Go files.
	Renderer Renderer
	// Logger receives progress and diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

// LoadConfig groups the settings used to discover entities.
func (c *Config) LoadConfig() *load.Config {
	return &load.Config{
		Patterns:   c.Patterns,
		BuildFlags: c.BuildFlags,
		Tag:        c.Tag,
	}
}

// header returns the configured header or the default one.
func (c *Config) header() string {
	if c.Header == "" {
		return DefaultHeader
	}
	return c.Header
}

// logger returns the configured logger or the default one.
func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// fileConfig is the YAML representation of Config.
type fileConfig struct {
	Header     *string  `yaml:"header"`
	Target     *string  `yaml:"target"`
	Workers    *int     `yaml:"workers"`
	Patterns   []string `yaml:"patterns"`
	BuildFlags []string `yaml:"build_flags"`
	Tag        *string  `yaml:"tag"`
}

// options converts the settings present in the file into options, so the
// values are validated the same way as programmatic ones.
func (fc *fileConfig) options() []Option {
	var opts []Option
	if fc.Header != nil {
		opts = append(opts, WithHeader(*fc.Header))
	}
	if fc.Target != nil {
		opts = append(opts, WithTarget(*fc.Target))
	}
	if fc.Workers != nil {
		opts = append(opts, WithWorkers(*fc.Workers))
	}
	if len(fc.Patterns) > 0 {
		opts = append(opts, WithPatterns(fc.Patterns...))
	}
	if len(fc.BuildFlags) > 0 {
		opts = append(opts, WithBuildFlags(fc.BuildFlags...))
	}
	if fc.Tag != nil {
		opts = append(opts, WithTag(*fc.Tag))
	}
	return opts
}

// ParseConfigFile parses a YAML configuration and returns the options it
// describes.
func ParseConfigFile(buf []byte) ([]Option, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(buf, &fc); err != nil {
		return nil, fmt.Errorf("specgen: parse config: %w", err)
	}
	return fc.options(), nil
}

// ReadConfigFile reads the YAML configuration file at path.
func ReadConfigFile(path string) ([]Option, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts, err := ParseConfigFile(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
