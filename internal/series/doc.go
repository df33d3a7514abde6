// Package series computes truncated partial sums of the Basel series,
// Σ_{i=1}^{n} 1/i², which converges to π²/6.
//
// The reference method is plain forward summation in ascending index order.
// Floating-point addition is not associative, so the order is part of the
// contract: Forward reproduces the classic loop bit for bit. Compensated and
// Reverse trade that bit-compatibility for a smaller rounding error.
//
// Everything here is pure. No package state is read or written, so repeated
// calls with the same arguments return bit-identical results.
package series
