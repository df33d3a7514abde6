// Package ir defines the result record produced by one series evaluation and
// its content-addressed identity.
//
// Key design constraints:
//   - Canonical JSON carries no floats. A float64 travels as its IEEE-754
//     bit pattern (Result.Bits) so identity is exact.
//   - All JSON and YAML tags use snake_case.
//   - ir imports nothing internal.
package ir
