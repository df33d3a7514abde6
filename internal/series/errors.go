package series

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel matched by every input error.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected input.
type ArgumentError struct {
	// Input is the offending value as the caller supplied it.
	Input string

	// Reason is a short human-readable explanation.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidArgument, e.Input, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) match.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(input, reason string) *ArgumentError {
	return &ArgumentError{Input: input, Reason: reason}
}
