package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/load"
)

// ValidOutputs defines the allowed output formats of describe.
var ValidOutputs = []string{"json", "yaml", "msgpack"}

// DescribeOptions holds the flags of the describe command.
type DescribeOptions struct {
	LoadOptions
	Output string
	// Entities prints the entity descriptors instead of the reports.
	Entities bool
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DescribeOptions{}
	cmd := &cobra.Command{
		Use:   "describe [packages]",
		Short: "Print the classification and members of the entities",
		Long: `Print, for every entity, the category of each field, the operations
it supports and the names of the generated members. Nothing is written.

With --entities, the raw entity descriptors are printed instead. Their
output can be saved and fed back to generate with --file. The msgpack
format is binary and meant to be redirected to a .msgpack file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidOutput(opts.Output) {
				return fmt.Errorf("invalid output %q: must be one of %v", opts.Output, ValidOutputs)
			}
			return runDescribe(cmd, rootOpts, opts, args)
		},
	}
	opts.LoadOptions.register(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "json", "output format (json|yaml|msgpack)")
	cmd.Flags().BoolVar(&opts.Entities, "entities", false, "print entity descriptors instead of reports")
	return cmd
}

func runDescribe(cmd *cobra.Command, rootOpts *RootOptions, opts *DescribeOptions, patterns []string) error {
	cfg, err := rootOpts.config(opts.options()...)
	if err != nil {
		return err
	}
	es, err := entities(cmd.Context(), cfg, opts.Descriptors, patterns)
	if err != nil {
		return err
	}
	if opts.Entities {
		return encode(cmd.OutOrStdout(), opts.Output, es)
	}
	reports := make([]*gen.Report, 0, len(es))
	for _, e := range es {
		m, err := gen.BuildModule(e)
		if err != nil {
			return err
		}
		reports = append(reports, gen.NewReport(m))
	}
	return encode(cmd.OutOrStdout(), opts.Output, reports)
}

// encode writes v to w in the given format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "msgpack":
		if es, ok := v.([]*load.Entity); ok {
			buf, err := load.EncodeMsgpack(es)
			if err != nil {
				return err
			}
			_, err = w.Write(buf)
			return err
		}
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(v)
	default:
		if es, ok := v.([]*load.Entity); ok {
			buf, err := load.MarshalEntities(es)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s\n", buf)
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// isValidOutput checks if the output is one of the allowed formats.
func isValidOutput(output string) bool {
	for _, o := range ValidOutputs {
		if o == output {
			return true
		}
	}
	return false
}
