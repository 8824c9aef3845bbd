// Package lvldiff is your in-process toolbox for forward-mode automatic
// differentiation — from reusable derivative-structure compilers to sparse
// gradients and Taylor-model fitting.
//
// 🚀 What is lvldiff?
//
//	A modern, thread-safe library that brings together:
//		• Derivative structures: value + every partial derivative up to a
//		  fixed order, packed in one flat array
//		• Table-driven algebra: Leibniz multiplication tables and
//		  Faà di Bruno composition tables, compiled once and cached forever
//		• Elementary functions: exp/log/trig/hyperbolic/pow families with
//		  closed-form Taylor-coefficient recurrences
//		• Sparse gradients: first-order partials over thousands of
//		  parameters without dense storage
//		• Taylor fitting: recover derivative structures from noisy samples
//		  by least squares
//
// ✨ Why choose lvldiff?
//
//   - Exact to machine precision – no finite-difference step-size tuning
//   - Rock-solid guarantees – immutable compilers, lock-free read path
//   - Pure Go – no cgo, no code generation, no hidden deps
//   - Composable – every operation works on plain []float64 slices
//
// Under the hood, everything is organized under three subpackages:
//
//	dstruct/  — compiler cache, indirection tables & the full algebra
//	grad/     — sparse single-order gradients
//	taylorfit/— least-squares recovery of Taylor coefficients (gonum/mat)
//
// Quick sketch (2 parameters, order 2):
//
//	index:   0     1     2      3     4      5
//	holds:   f   ∂f/∂x ∂²f/∂x² ∂f/∂y ∂²f/∂x∂y ∂²f/∂y²
//
// Dive into examples/ for Newton optimization, uncertainty propagation,
// sparse Jacobians and plotting of AD-computed derivatives.
//
//	go get github.com/katalvlaran/lvldiff/dstruct
package lvldiff
