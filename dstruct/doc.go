// Package dstruct compiles and applies table-driven derivative structures:
// a function value and all its partial derivatives up to a fixed order,
// for a fixed number of free parameters, packed in one flat []float64.
//
// 🚀 What is a derivative structure?
//
//	For p free parameters and derivation order o, a structure is a flat
//	array of C(p+o, o) coefficients. Index 0 always holds the function
//	value; the remaining slots hold partial derivatives in a compiler
//	specific order. Arithmetic on structures IS arithmetic on functions:
//	multiplying two arrays applies the generalized Leibniz rule,
//	composing with a univariate coefficient array applies the
//	multivariate Faà di Bruno chain rule.
//
// ✨ Key features:
//   - Compile once, reuse forever: a Compiler for (p, o) precomputes the
//     multiplication and composition tables; algebra then runs as flat
//     table-driven loops with no per-call symbolic recursion
//   - Full elementary function set: exp/expm1/log/log1p/log10, trig and
//     inverse trig, hyperbolic and inverse hyperbolic, the pow family,
//     RootN and Atan2 — each via a closed-form Taylor recurrence
//   - Lock-free reads: compilers live in a process-wide cache published
//     by atomic copy-extend-and-swap; concurrent callers never block
//   - Offset-based API: every operation takes (array, offset) pairs so
//     several logical structures can share one backing buffer
//
// ⚙️ Usage:
//
//	c, err := dstruct.GetCompiler(2, 2) // 2 parameters, order 2
//	if err != nil { ... }
//
//	// x = 2 (free parameter 0), y = 3 (free parameter 1)
//	x := make([]float64, c.Size())
//	y := make([]float64, c.Size())
//	x[0] = 2.0
//	ix, _ := c.PartialDerivativeIndex(1, 0)
//	x[ix] = 1.0
//	y[0] = 3.0
//	iy, _ := c.PartialDerivativeIndex(0, 1)
//	y[iy] = 1.0
//
//	z := make([]float64, c.Size())
//	_ = c.Multiply(x, 0, y, 0, z, 0) // z, ∂z/∂x, ∂z/∂y, ∂²z/∂x∂y, ...
//
// Error model:
//
//	Shape violations (wrong multi-index length, short arrays, mismatched
//	compilers) return sentinel errors matched via errors.Is. Numerical
//	domain issues (log of a negative, division by zero) are NOT errors:
//	they propagate as NaN/±Inf through the array, exactly as the scalar
//	math package would.
//
// Performance:
//
//	Construction of Compiler(p, o) is amortized free: it happens once per
//	process per shape. Each operation is O(total table size), a small
//	polynomial in C(p+o, o).
//
// See examples in example_test.go for complete scenarios.
package dstruct
