// Package cli implements the specgen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/gen/golang"
	"github.com/syssam/specgen/compiler/load"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	// ConfigFile is the YAML configuration file. When empty, specgen.yaml
	// is used if it exists in the working directory.
	ConfigFile string

	logger *slog.Logger
}

// Logger returns the logger configured for the command.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

// NewRootCommand creates the root command of the specgen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "specgen",
		Short: "specgen - query specifications for Go entities",
		Long: `Generate type-safe query predicates and specification factories
for the entity structs of a Go module.

Structs annotated with //specgen:entity get a companion <entity>_spec.go
file holding one predicate and one specification per supported operation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "configuration file (default "+gen.DefaultConfigFile+" if present)")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// LoadOptions holds the flags selecting the entities of a command.
type LoadOptions struct {
	Descriptors []string
	Tag         string
	BuildFlags  []string
}

func (o *LoadOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.Descriptors, "file", "f", nil, "read entities from JSON or YAML descriptor files instead of packages")
	cmd.Flags().StringVar(&o.Tag, "tag", "", "struct tag key holding field markers (default \""+load.DefaultTag+"\")")
	cmd.Flags().StringSliceVar(&o.BuildFlags, "build-flags", nil, "build flags forwarded to the package loader")
}

// options returns the generator options selected by the flags.
func (o *LoadOptions) options() []gen.Option {
	var opts []gen.Option
	if o.Tag != "" {
		opts = append(opts, gen.WithTag(o.Tag))
	}
	if len(o.BuildFlags) > 0 {
		opts = append(opts, gen.WithBuildFlags(o.BuildFlags...))
	}
	return opts
}

// config builds the generator configuration from the configuration file
// and the given options. Options take precedence over the file.
func (o *RootOptions) config(opts ...gen.Option) (*gen.Config, error) {
	base := []gen.Option{
		gen.WithRenderer(golang.NewRenderer()),
		gen.WithLogger(o.Logger()),
	}
	switch path := o.ConfigFile; {
	case path != "":
		base = append(base, gen.WithConfigFile(path))
	default:
		if _, err := os.Stat(gen.DefaultConfigFile); err == nil {
			base = append(base, gen.WithConfigFile(gen.DefaultConfigFile))
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return gen.NewConfig(append(base, opts...)...)
}

// entities loads the entities from descriptor files when given, or from
// the package patterns otherwise. Patterns default to the configured ones,
// then to "./...".
func entities(ctx context.Context, cfg *gen.Config, descriptors, patterns []string) ([]*load.Entity, error) {
	if len(descriptors) > 0 {
		var all []*load.Entity
		for _, path := range descriptors {
			es, err := load.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			all = append(all, es...)
		}
		return all, nil
	}
	lc := cfg.LoadConfig()
	if len(patterns) > 0 {
		lc.Patterns = patterns
	}
	if len(lc.Patterns) == 0 {
		lc.Patterns = []string{"./..."}
	}
	return lc.Load(ctx)
}
