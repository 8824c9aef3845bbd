// Package dstruct: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// dstruct package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation may panic on
// user-triggered error conditions; panics are reserved for programmer
// errors inside private table-construction helpers.

package dstruct

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dstruct: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will
// still use errors.Is to match.
//
// Floating-point domain issues (log of a negative value, zero divisors,
// 0 raised to a negative power) are deliberately NOT represented here:
// they are legitimate numerical outcomes and propagate through arrays
// as NaN/±Inf, never as errors.

var (
	// ErrBadShape is returned when a requested compiler shape is invalid
	// (negative parameter count or negative derivation order).
	ErrBadShape = errors.New("dstruct: parameters and order must be non-negative")

	// ErrDimensionMismatch indicates an argument whose parameter count
	// does not match the compiler (multi-index length, Taylor offsets,
	// or an operand built for a different compiler shape).
	ErrDimensionMismatch = errors.New("dstruct: dimension mismatch")

	// ErrShortArray indicates a derivative array (or univariate
	// coefficient array) too short to hold Size() coefficients past its
	// offset, or a negative offset.
	ErrShortArray = errors.New("dstruct: array too short for derivative structure")

	// ErrOutOfRange indicates a coefficient index outside [0, Size()).
	ErrOutOfRange = errors.New("dstruct: index out of range")

	// ErrOrderTooLarge indicates derivation orders the internal index
	// bookkeeping cannot represent: a multi-index whose total order
	// exceeds the compiler's maximum, a structure size overflowing int,
	// or a factorial argument beyond exact representation.
	ErrOrderTooLarge = errors.New("dstruct: derivation order too large")
)
