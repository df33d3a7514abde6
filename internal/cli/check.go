package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/roach88/basel/internal/ir"
	"github.com/roach88/basel/internal/series"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	N         int64   // term count for the convergence property
	Tolerance float64 // allowed distance from π²/6 at N
	Prefix    int64   // monotonicity is checked for n = 1..Prefix
}

// PropertyResult holds the outcome of one property.
type PropertyResult struct {
	Name   string `json:"name" yaml:"name"`
	Pass   bool   `json:"pass" yaml:"pass"`
	Detail string `json:"detail" yaml:"detail"`
}

// CheckResult holds the overall self-check result.
type CheckResult struct {
	Method     string           `json:"method" yaml:"method"`
	Properties []PropertyResult `json:"properties" yaml:"properties"`
	Passed     int              `json:"passed" yaml:"passed"`
	Failed     int              `json:"failed" yaml:"failed"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the summation against known properties",
		Long: `Evaluate the series and verify the properties every implementation
must satisfy: exact values for small n, monotonic growth, bit-identical
repeat runs and convergence to π²/6.

Exit codes:
  0 - All properties hold
  1 - One or more properties failed
  2 - Command error (invalid flag values)

Examples:
  basel check
  basel check --n 1000000 --tolerance 1e-5
  basel check --method reverse --format json`,
		Args:          exitOnArgError(rootOpts, cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.N, "n", series.DefaultN, "term count for the convergence check")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", 1e-7, "allowed distance from π²/6")
	cmd.Flags().Int64Var(&opts.Prefix, "prefix", 2000, "check monotonicity for n = 1..prefix")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
	id := opts.runID()
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   id,
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose, id)

	method, err := series.ParseMethod(opts.Method)
	if err != nil {
		return reportArgumentError(formatter, err)
	}
	if err := series.Validate(opts.N); err != nil {
		return reportArgumentError(formatter, fmt.Errorf("--n: %w", err))
	}
	if err := series.Validate(opts.Prefix); err != nil {
		return reportArgumentError(formatter, fmt.Errorf("--prefix: %w", err))
	}
	if !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 0) {
		return reportArgumentError(formatter, &series.ArgumentError{
			Input:  fmt.Sprint(opts.Tolerance),
			Reason: "tolerance must be a positive finite number",
		})
	}

	checker := propertyChecker{method: method}
	props := []struct {
		name string
		run  func() (bool, string)
	}{
		{"exact_n1", func() (bool, string) { return checker.exact(1, 1.0) }},
		{"exact_n2", func() (bool, string) { return checker.exact(2, 1.25) }},
		{"near_n4", func() (bool, string) { return checker.near(4, 1.0+1.0/4+1.0/9+1.0/16, 1e-15) }},
		{"monotonic", func() (bool, string) { return checker.monotonic(opts.Prefix) }},
		{"idempotent", func() (bool, string) { return checker.idempotent(opts.Prefix) }},
		{"convergence", func() (bool, string) { return checker.near(opts.N, series.Limit, opts.Tolerance) }},
	}

	result := CheckResult{Method: method.String()}
	for _, p := range props {
		logger.Debug("checking property", "property", p.name)
		pass, detail := p.run()
		result.Properties = append(result.Properties, PropertyResult{Name: p.name, Pass: pass, Detail: detail})
		if pass {
			result.Passed++
		} else {
			result.Failed++
			logger.Warn("property failed", "property", p.name, "detail", detail)
		}
	}

	if formatter.structured() {
		return outputCheckStructured(formatter, result)
	}
	return outputCheckText(cmd, result)
}

// propertyChecker evaluates properties for a single summation method.
type propertyChecker struct {
	method series.Method
}

func (c propertyChecker) sum(n int64) float64 {
	v, err := series.SumWith(n, c.method)
	if err != nil {
		// n is validated before any property runs.
		panic(err)
	}
	return v
}

func (c propertyChecker) exact(n int64, want float64) (bool, string) {
	got := c.sum(n)
	return got == want, fmt.Sprintf("sum(%d) = %v, want exactly %v", n, got, want)
}

func (c propertyChecker) near(n int64, want, tolerance float64) (bool, string) {
	got := c.sum(n)
	diff := math.Abs(got - want)
	return diff <= tolerance, fmt.Sprintf("sum(%s) = %v, |diff| = %.3g, tolerance %.3g", groupDigits(n), got, diff, tolerance)
}

func (c propertyChecker) monotonic(prefix int64) (bool, string) {
	prev := 0.0
	for n := int64(1); n <= prefix; n++ {
		got := c.sum(n)
		if got < prev {
			return false, fmt.Sprintf("sum(%d) = %v < sum(%d) = %v", n, got, n-1, prev)
		}
		prev = got
	}
	return true, fmt.Sprintf("non-decreasing for n = 1..%d", prefix)
}

func (c propertyChecker) idempotent(n int64) (bool, string) {
	first, err := ir.NewResult(n, c.method.String(), c.sum(n))
	if err != nil {
		return false, err.Error()
	}
	second, err := ir.NewResult(n, c.method.String(), c.sum(n))
	if err != nil {
		return false, err.Error()
	}
	if !first.SameValue(second) {
		return false, fmt.Sprintf("sum(%d) gave %s then %s", n, first.Bits, second.Bits)
	}
	return true, fmt.Sprintf("sum(%d) bit-identical across runs, fingerprint %.12s", n, first.Fingerprint)
}

// outputCheckStructured outputs the check result as JSON or YAML.
func outputCheckStructured(formatter *OutputFormatter, result CheckResult) error {
	if result.Failed == 0 {
		return formatter.Success(result)
	}

	msg := fmt.Sprintf("%d property(ies) failed", result.Failed)
	if err := formatter.Respond(CLIResponse{
		Status: "error",
		Data:   result,
		Error:  &CLIError{Code: ErrCodeCheckFailed, Message: msg},
	}); err != nil {
		return err
	}
	return NewExitError(ExitFailure, msg)
}

// outputCheckText outputs the check result as text.
func outputCheckText(cmd *cobra.Command, result CheckResult) error {
	w := cmd.OutOrStdout()

	for _, p := range result.Properties {
		mark := "PASS"
		if !p.Pass {
			mark = "FAIL"
		}
		fmt.Fprintf(w, "%s %-12s %s\n", mark, p.Name, p.Detail)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary (%s): %d passed, %d failed, %d total\n",
		result.Method, result.Passed, result.Failed, len(result.Properties))

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d property(ies) failed", result.Failed))
	}
	return nil
}
