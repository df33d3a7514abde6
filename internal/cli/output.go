package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Self-check failure
	ExitCommandError = 2 // Command error (invalid argument, bad flag value, etc.)
)

// Error codes reported in CLIError.Code.
const (
	ErrCodeInvalidArgument = "E101" // n, flag value or argument count rejected
	ErrCodeSchema          = "E102" // result record failed schema validation
	ErrCodeCheckFailed     = "E201" // one or more self-check properties failed
)

// ExitError represents an error with a specific exit code.
// Commands return it after they have already reported the error through
// the OutputFormatter, so main only needs the code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles text, JSON and YAML output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics and text-mode errors (defaults to Writer)
	Verbose   bool
	TraceID   string // copied into structured responses
}

// CLIResponse is the standard structured response for CLI output.
type CLIResponse struct {
	Status  string      `json:"status" yaml:"status"`                         // "ok" or "error"
	Data    interface{} `json:"data,omitempty" yaml:"data,omitempty"`         // success payload
	Error   *CLIError   `json:"error,omitempty" yaml:"error,omitempty"`       // error details
	TraceID string      `json:"trace_id,omitempty" yaml:"trace_id,omitempty"` // run correlation
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code" yaml:"code"`                           // "E001", "E101", etc.
	Message string      `json:"message" yaml:"message"`                     // human-readable message
	Details interface{} `json:"details,omitempty" yaml:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// Text mode prints data with its default formatting, one line.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.structured() {
		return f.encode(CLIResponse{
			Status:  "ok",
			Data:    data,
			TraceID: f.TraceID,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Respond outputs a prebuilt response. Used when a command reports a
// payload and an error together.
func (f *OutputFormatter) Respond(resp CLIResponse) error {
	resp.TraceID = f.TraceID
	return f.encode(resp)
}

// Error outputs an error in the configured format.
// Text-mode errors go to ErrWriter so stdout carries no partial output.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.structured() {
		return f.encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
			TraceID: f.TraceID,
		})
	}

	w := f.GetErrWriter()
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

func (f *OutputFormatter) structured() bool {
	return f.Format == "json" || f.Format == "yaml"
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	}
	return json.NewEncoder(f.Writer).Encode(resp)
}
