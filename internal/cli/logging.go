package cli

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// newLogger builds the diagnostic logger for one invocation.
// Records go to w as text, tagged with the run ID.
func newLogger(w io.Writer, verbose bool, runID string) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler).With("run_id", runID)
}

var numberPrinter = message.NewPrinter(language.English)

// groupDigits renders n with thousands separators, e.g. 100,000,000.
func groupDigits(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}
