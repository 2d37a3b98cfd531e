package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/specgen/compiler/gen"
)

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	LoadOptions
	Target  string
	Header  string
	Workers int
}

// options returns the generator options selected by the flags.
func (o *GenerateOptions) options() []gen.Option {
	opts := o.LoadOptions.options()
	if o.Target != "" {
		opts = append(opts, gen.WithTarget(o.Target))
	}
	if o.Header != "" {
		opts = append(opts, gen.WithHeader(o.Header))
	}
	if o.Workers > 0 {
		opts = append(opts, gen.WithWorkers(o.Workers))
	}
	return opts
}

func (o *GenerateOptions) register(cmd *cobra.Command) {
	o.LoadOptions.register(cmd)
	cmd.Flags().StringVarP(&o.Target, "target", "t", "", "output directory (default: next to each entity)")
	cmd.Flags().StringVar(&o.Header, "header", "", "header comment of generated files")
	cmd.Flags().IntVarP(&o.Workers, "workers", "w", 0, "entities generated in parallel (default: GOMAXPROCS)")
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [packages]",
		Short: "Generate the specification files of the entities",
		Long: `Generate one <entity>_spec.go file per entity.

Entities are discovered in the given package patterns, or read from
descriptor files with --file. Each file is written next to the entity
source unless --target is set.`,
		Example: `  specgen generate ./model/...
  specgen generate -f entities.yaml -t ./gen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootOpts, opts, args)
		},
	}
	opts.register(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, rootOpts *RootOptions, opts *GenerateOptions, patterns []string) error {
	cfg, err := rootOpts.config(opts.options()...)
	if err != nil {
		return err
	}
	es, err := entities(cmd.Context(), cfg, opts.Descriptors, patterns)
	if err != nil {
		return err
	}
	g := gen.NewGenerator(cfg)
	if err := g.Generate(cmd.Context(), es); err != nil {
		return err
	}
	m := g.Metrics()
	fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s), %d member(s), %d specification(s)\n", m.FilesGenerated, m.Members, m.Specifications)
	return nil
}
