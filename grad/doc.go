// Package grad provides sparse first-order gradients: one function value
// plus a map of first partial derivatives, keyed by free-parameter index.
//
// 🚀 When to prefer grad over dstruct?
//
//	Derivative structures grow as C(p+o, o): thousands of free
//	parameters at order 1 would waste a dense slot per parameter in
//	every intermediate. A sparse Gradient only carries the parameters a
//	value actually depends on, so building a Jacobian row touches just
//	the variables on that row's computation path.
//
// ✨ Key features:
//   - Sparse storage — memory proportional to the dependency set
//   - Full elementary-function set at order 1 via one chain-rule helper
//   - Value semantics — every operation returns a fresh Gradient;
//     inputs are never mutated
//
// ⚙️ Usage:
//
//	x := grad.Variable(0, 2.0)
//	y := grad.Variable(7, 3.0) // indices need not be contiguous
//	z := x.Mul(y).Sin()
//	_ = z.Value()     // sin(6)
//	_ = z.Partial(0)  // 3·cos(6)
//	_ = z.Partial(7)  // 2·cos(6)
//
// Numerical domain issues propagate as NaN/±Inf values, mirroring the
// dstruct convention; only structural misuse returns errors.
package grad
