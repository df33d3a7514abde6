package ir

import (
	"fmt"
	"math"
	"strconv"
)

// Result records one evaluation of the series.
type Result struct {
	N           int64   `json:"n" yaml:"n"`
	Method      string  `json:"method" yaml:"method"`
	Value       float64 `json:"value" yaml:"value"`
	Bits        string  `json:"bits" yaml:"bits"`               // IEEE-754 bits, 16 hex digits
	Fingerprint string  `json:"fingerprint" yaml:"fingerprint"` // see ResultFingerprint
}

// FloatBits renders the bit pattern of v as 16 lowercase hex digits.
func FloatBits(v float64) string {
	return fmt.Sprintf("%016x", math.Float64bits(v))
}

// ParseFloatBits is the inverse of FloatBits.
func ParseFloatBits(s string) (float64, error) {
	if len(s) != 16 {
		return 0, fmt.Errorf("float bits %q: want 16 hex digits", s)
	}
	u, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("float bits %q: %w", s, err)
	}
	return math.Float64frombits(u), nil
}

// NewResult builds a validated result record.
func NewResult(n int64, method string, value float64) (Result, error) {
	bits := FloatBits(value)
	fp, err := ResultFingerprint(n, method, bits)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		N:           n,
		Method:      method,
		Value:       value,
		Bits:        bits,
		Fingerprint: fp,
	}
	if err := ValidateResult(r); err != nil {
		return Result{}, err
	}
	return r, nil
}

// SameValue reports whether two results carry bit-identical values.
func (r Result) SameValue(other Result) bool {
	return r.Bits == other.Bits
}
