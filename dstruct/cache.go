// Package dstruct: process-wide compiler cache.
//
// The cache is an immutable 2D arena of *Compiler indexed by
// (parameters, order), published through an atomic pointer. Readers
// never lock: a hit is one atomic load plus two bounds checks. Growth is
// optimistic copy-extend-and-publish — a writer builds a larger arena
// copying every existing compiler forward, fills the missing entries in
// ascending p+o diagonal order (so each dependency exists before it is
// needed), then compare-and-swaps the published pointer. Losing the swap
// wastes nothing but duplicated construction work: newCompiler is a pure
// function of (p, o) and compilers are immutable, so the loser's own
// compiler is still valid and is returned directly.

package dstruct

import (
	"fmt"
	"sync/atomic"
)

// compilers is the published arena. Row p holds orders 0..maxOrder; the
// arena is rectangular and grows monotonically.
var compilers atomic.Pointer[[][]*Compiler]

// GetCompiler returns the cached compiler for the given number of free
// parameters and derivation order, building (and caching) it together
// with every smaller compiler it depends on if necessary.
//
// Errors:
//   - ErrBadShape      — parameters < 0 or order < 0.
//   - ErrOrderTooLarge — the flat array size C(parameters+order, order)
//     does not fit in an int.
//
// Concurrency: safe for unrestricted concurrent use; see the package
// file comment for the publication protocol.
func GetCompiler(parameters, order int) (*Compiler, error) {
	if parameters < 0 || order < 0 {
		return nil, fmt.Errorf("(%d, %d): %w", parameters, order, ErrBadShape)
	}
	if _, ok := binomial(parameters+order, order); !ok {
		return nil, fmt.Errorf("(%d, %d): structure size overflows int: %w", parameters, order, ErrOrderTooLarge)
	}

	// fast path: already published
	snapshot := compilers.Load()
	if snapshot != nil {
		cache := *snapshot
		if parameters < len(cache) && order < len(cache[parameters]) && cache[parameters][order] != nil {
			return cache[parameters][order], nil
		}
	}

	// grow: build a larger arena preserving every existing compiler
	maxParameters, maxOrder := parameters, order
	var old [][]*Compiler
	if snapshot != nil {
		old = *snapshot
		if len(old)-1 > maxParameters {
			maxParameters = len(old) - 1
		}
		if len(old[0])-1 > maxOrder {
			maxOrder = len(old[0]) - 1
		}
	}
	arena := make([][]*Compiler, maxParameters+1)
	for p := range arena {
		arena[p] = make([]*Compiler, maxOrder+1)
	}
	for p := range old {
		copy(arena[p], old[p])
	}

	// fill missing entries in increasing diagonal order: (p-1, o) and
	// (p, o-1) always land on earlier diagonals or earlier in this one
	for diag := 0; diag <= parameters+order; diag++ {
		oMin, oMax := 0, diag
		if diag-parameters > oMin {
			oMin = diag - parameters
		}
		if order < oMax {
			oMax = order
		}
		for o := oMin; o <= oMax; o++ {
			p := diag - o
			if arena[p][o] == nil {
				var valueCompiler, derivativeCompiler *Compiler
				if p > 0 {
					valueCompiler = arena[p-1][o]
				}
				if o > 0 {
					derivativeCompiler = arena[p][o-1]
				}
				arena[p][o] = newCompiler(p, o, valueCompiler, derivativeCompiler)
			}
		}
	}

	// publish; on a lost race the fresh arena is discarded, but the
	// compiler built for this caller remains valid
	compilers.CompareAndSwap(snapshot, &arena)

	return arena[parameters][order], nil
}

// newCompiler assembles the immutable compiler record for (parameters,
// order) from its two sub-compilers: valueCompiler is (parameters-1,
// order) (nil iff parameters == 0) and derivativeCompiler is
// (parameters, order-1) (nil iff order == 0).
func newCompiler(parameters, order int, valueCompiler, derivativeCompiler *Compiler) *Compiler {
	c := &Compiler{
		parameters: parameters,
		order:      order,
	}
	c.sizes = compileSizes(parameters, order, valueCompiler)
	c.derivativesIndirection = compileDerivativesIndirection(parameters, order, valueCompiler, derivativeCompiler)
	c.lowerIndirection = compileLowerIndirection(parameters, order, valueCompiler, derivativeCompiler)
	c.multIndirection = compileMultiplicationIndirection(parameters, order, valueCompiler, derivativeCompiler, c.lowerIndirection)
	c.compIndirection = compileCompositionIndirection(parameters, order, valueCompiler, derivativeCompiler, c.sizes, c.derivativesIndirection)

	return c
}
