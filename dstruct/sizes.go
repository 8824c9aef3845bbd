// Package dstruct: size table construction.
package dstruct

import "math"

// compileSizes builds the sizes table for a (parameters, order) compiler.
//
// The table obeys the Pascal-triangle recursion
//
//	sizes[0][o] = 1
//	sizes[p][0] = 1
//	sizes[p][o] = sizes[p-1][o] + sizes[p][o-1]
//
// so sizes[p][o] == C(p+o, o). Rows 0..parameters-1 are shared with the
// value sub-compiler (the tables are immutable); only the last row is
// computed here as a running sum.
//
// Complexity: O(order) time, O(order) fresh memory.
func compileSizes(parameters, order int, valueCompiler *Compiler) [][]int {
	sizes := make([][]int, parameters+1)
	if parameters == 0 {
		sizes[0] = make([]int, order+1)
		for o := 0; o <= order; o++ {
			sizes[0][o] = 1
		}

		return sizes
	}

	copy(sizes, valueCompiler.sizes)
	last := make([]int, order+1)
	last[0] = 1
	for o := 0; o < order; o++ {
		last[o+1] = last[o] + sizes[parameters-1][o+1]
	}
	sizes[parameters] = last

	return sizes
}

// binomial computes C(n, k) in int arithmetic, reporting false when the
// running product would overflow. Used by GetCompiler to refuse shapes
// whose flat-array size cannot be represented.
func binomial(n, k int) (int, bool) {
	if k < 0 || k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		if result > math.MaxInt/(n-k+i) {
			return 0, false
		}
		// exact at every step: result is C(n-k+i, i) after the division
		result = result * (n - k + i) / i
	}

	return result, true
}
