package series

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Limit is the value the series converges to, π²/6.
const Limit = math.Pi * math.Pi / 6

// DefaultN is the term count used by the example driver.
const DefaultN int64 = 100_000_000

// Sum returns the forward partial sum of 1/i² for i = 1..n.
// n must be positive.
func Sum(n int64) (float64, error) {
	return SumWith(n, MethodForward)
}

// SumWith returns the partial sum of 1/i² for i = 1..n using method m.
func SumWith(n int64, m Method) (float64, error) {
	if err := Validate(n); err != nil {
		return 0, err
	}
	switch m {
	case MethodForward:
		return Forward(n), nil
	case MethodCompensated:
		return Compensated(n), nil
	case MethodReverse:
		return Reverse(n), nil
	default:
		return 0, invalid(m.String(), "unknown method")
	}
}

// Validate reports whether n is an acceptable term count.
func Validate(n int64) error {
	if n <= 0 {
		return invalid(strconv.FormatInt(n, 10), "must be a positive integer")
	}
	return nil
}

// ParseN parses a decimal term count. Single underscores between digits are
// allowed, as in 100_000_000.
func ParseN(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	digits := strings.ReplaceAll(trimmed, "_", "")
	if digits == "" || strings.HasPrefix(trimmed, "_") || strings.HasSuffix(trimmed, "_") ||
		strings.Contains(trimmed, "__") {
		return 0, invalid(s, "not an integer")
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, invalid(s, "out of range")
		}
		if f, ferr := strconv.ParseFloat(digits, 64); ferr == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return 0, invalid(s, "must be a whole number")
		}
		return 0, invalid(s, "not an integer")
	}
	if err := Validate(n); err != nil {
		return 0, fmt.Errorf("parse term count: %w", err)
	}
	return n, nil
}

// Forward is the reference loop. It adds 1/(i·i) for i = 1..n in ascending
// order. For n <= 0 the loop does not run and 0 is returned.
//
// The square is formed in float64. i is exact there up to 2^53, and the
// product is rounded once, which matches converting the exact integer square.
func Forward(n int64) float64 {
	total := 0.0
	for i := range ascending(1, n) {
		fi := float64(i)
		total += 1.0 / (fi * fi)
	}
	return total
}

// Compensated adds the terms in ascending order with Neumaier's variant of
// Kahan summation. The result usually differs from Forward in the last few
// bits.
func Compensated(n int64) float64 {
	sum, c := 0.0, 0.0
	for i := range ascending(1, n) {
		fi := float64(i)
		term := 1.0 / (fi * fi)
		t := sum + term
		if math.Abs(sum) >= math.Abs(term) {
			c += (sum - t) + term
		} else {
			c += (term - t) + sum
		}
		sum = t
	}
	return sum + c
}

// Reverse adds the terms from i = n down to 1.
func Reverse(n int64) float64 {
	total := 0.0
	for i := n; i >= 1; i-- {
		fi := float64(i)
		total += 1.0 / (fi * fi)
	}
	return total
}

// ascending yields from..to inclusive. It stops on reaching to instead of
// testing i <= to, so to == math.MaxInt64 terminates.
func ascending(from, to int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if from > to {
			return
		}
		for i := from; ; i++ {
			if !yield(i) || i == to {
				return
			}
		}
	}
}
