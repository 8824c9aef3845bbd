// Package dstruct: core record types for compiled derivative structures.
package dstruct

// multTerm is one entry of a multiplication indirection row, implementing
// one summand of the generalized Leibniz rule:
//
//	out[i] += coeff · lhs[lhsIndex] · rhs[rhsIndex]
//
// coeff is the integer multiplicity C(α,β) accumulated during table
// construction; duplicate (lhsIndex, rhsIndex) pairs are merged at build
// time so each pair appears at most once per row.
type multTerm struct {
	coeff    int
	lhsIndex int
	rhsIndex int
}

// compTerm is one entry of a composition indirection row, implementing
// one summand of the multivariate Faà di Bruno formula:
//
//	out[i] += coeff · f[fIndex] · Π operand[operandIndices[k]]
//
// The header (coeff, fIndex) is fixed; operandIndices carries the
// variable number of first-level derivative factors. operandIndices is
// kept sorted so build-time merging can compare terms positionally.
type compTerm struct {
	coeff          int
	fIndex         int
	operandIndices []int
}

// Compiler holds the precomputed indirection tables for derivative
// structures with a given number of free parameters and derivation
// order. A Compiler is immutable after construction and safe for
// unsynchronized concurrent use; obtain instances through GetCompiler,
// which caches them for the process lifetime.
//
// Internal layout:
//   - sizes[p][o]             — number of coefficients of a (p, o) structure
//   - derivativesIndirection  — coefficient index → multi-index
//   - lowerIndirection        — embedding map used only while building
//     the multiplication table of larger compilers
//   - multIndirection         — per-index Leibniz product terms
//   - compIndirection         — per-index Faà di Bruno composition terms
type Compiler struct {
	parameters int
	order      int

	sizes                  [][]int
	derivativesIndirection [][]int
	lowerIndirection       []int
	multIndirection        [][]multTerm
	compIndirection        [][]compTerm
}

// Parameters returns the number of free parameters.
func (c *Compiler) Parameters() int { return c.parameters }

// Order returns the maximum derivation order.
func (c *Compiler) Order() int { return c.order }

// Size returns the number of coefficients in a derivative array handled
// by this compiler, i.e. C(parameters+order, order).
func (c *Compiler) Size() int { return c.sizes[c.parameters][c.order] }

// Operand couples a scalar coefficient with a derivative array and its
// offset, for use with LinearCombination. It replaces positional
// (a1, c1, offset1, a2, c2, offset2, ...) argument lists with a small
// named type.
type Operand struct {
	// A is the scalar coefficient applied to the whole structure.
	A float64
	// DS is the backing slice holding the derivative structure.
	DS []float64
	// Offset is the position of the structure's value inside DS.
	Offset int
}
