package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/basel/internal/ir"
	"github.com/roach88/basel/internal/runid"
	"github.com/roach88/basel/internal/series"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Method  string // see series.MethodNames

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to runid.UUIDv7Generator.
	RunIDs runid.Generator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the basel CLI.
// Run without a subcommand it is the example driver: sum n terms, print one line.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basel [n]",
		Short: "basel - partial sums of the Basel series",
		Long: `Compute the partial sum of 1/i² for i = 1..n and print it.

The series converges to π²/6. With the default forward method the terms are
added in ascending order, reproducing the classic loop bit for bit.
n defaults to 100,000,000.

Examples:
  basel
  basel 1000
  basel 100_000_000 --method compensated
  basel 4 --format json`,
		Version:       ir.ToolVersion,
		Args:          exitOnArgError(opts, cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			formatter := preRunFormatter(opts, cmd)
			if !isValidFormat(opts.Format) {
				return reportArgumentError(formatter, &series.ArgumentError{
					Input:  opts.Format,
					Reason: fmt.Sprintf("invalid format, must be one of %v", ValidFormats),
				})
			}
			if _, err := series.ParseMethod(opts.Method); err != nil {
				return reportArgumentError(formatter, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runSum(opts, input, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Method, "method", series.MethodForward.String(), "summation method (forward|compensated|reverse)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return reportArgumentError(preRunFormatter(opts, c), err)
	})

	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// preRunFormatter builds a formatter for errors raised before a command runs.
// An unrecognised --format falls back to text so the error is still reported.
func preRunFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	format := opts.Format
	if !isValidFormat(format) {
		format = "text"
	}
	return &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// exitOnArgError reports positional-argument errors as invalid arguments.
func exitOnArgError(opts *RootOptions, validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return reportArgumentError(preRunFormatter(opts, cmd), err)
		}
		return nil
	}
}

// runID returns a fresh run ID from the configured generator.
func (o *RootOptions) runID() string {
	if o.RunIDs == nil {
		return runid.UUIDv7Generator{}.Generate()
	}
	return o.RunIDs.Generate()
}
