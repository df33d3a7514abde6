package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/basel/internal/ir"
	"github.com/roach88/basel/internal/series"
)

// runSum is the example driver: parse n, sum, emit one line.
// An empty input means series.DefaultN.
func runSum(opts *RootOptions, input string, cmd *cobra.Command) error {
	id := opts.runID()
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   id,
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose, id)

	n := series.DefaultN
	if input != "" {
		parsed, err := series.ParseN(input)
		if err != nil {
			return reportArgumentError(formatter, err)
		}
		n = parsed
	}

	method, err := series.ParseMethod(opts.Method)
	if err != nil {
		return reportArgumentError(formatter, err)
	}

	logger.Debug("summing series", "terms", groupDigits(n), "method", method)
	start := time.Now()
	value, err := series.SumWith(n, method)
	if err != nil {
		return reportArgumentError(formatter, err)
	}
	logger.Debug("series summed", "elapsed", time.Since(start), "value", value)

	result, err := ir.NewResult(n, method.String(), value)
	if err != nil {
		_ = formatter.Error(ErrCodeSchema, err.Error(), nil)
		return WrapExitError(ExitFailure, "result failed validation", err)
	}
	logger.Debug("result recorded", "bits", result.Bits, "fingerprint", result.Fingerprint)

	if opts.Format == "text" {
		return formatter.Success(result.Value)
	}
	return formatter.Success(result)
}

// reportArgumentError emits an invalid-argument error and returns the
// matching exit error. Flag and positional-argument errors from cobra are
// reported the same way, without details.
func reportArgumentError(formatter *OutputFormatter, err error) error {
	var details interface{}
	var argErr *series.ArgumentError
	if errors.As(err, &argErr) {
		details = map[string]string{"input": argErr.Input, "reason": argErr.Reason}
	}
	if outErr := formatter.Error(ErrCodeInvalidArgument, err.Error(), details); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitCommandError, "invalid argument", err)
}
