// Package dstruct: multiplication table construction.
package dstruct

// compileMultiplicationIndirection builds the per-index Leibniz product
// terms for a (parameters, order) compiler.
//
// Algorithm Outline:
//  1. For parameters == 0 or order == 0 the structure is a single value
//     slot: the table is the one-term row out[0] = lhs[0]·rhs[0].
//  2. The value block — the first Size(parameters-1, order) rows — is
//     reused verbatim from the value sub-compiler: its index space
//     coincides with ours on that block.
//  3. Each derivative-block row is derived from the corresponding row of
//     the (parameters, order-1) sub-compiler: differentiating a product
//     term c·L·R once more yields c·L'·R + c·L·R', so every sub-term
//     spawns two cross terms, one side remapped through lowerIndirection
//     (the factor staying at the lower order) and the other shifted into
//     the derivative block (the factor being differentiated).
//  4. Merge: any two generated terms landing on the same
//     (lhsIndex, rhsIndex) pair are combined by summing multiplicities.
//     The comparison is exhaustive over every pair in the row; a missed
//     merge would silently double-count or under-count cross-derivative
//     contributions.
//
// Complexity: O(Σ row² ) for the merge, negligible next to the one-time
// construction cost being amortized over the process lifetime.
func compileMultiplicationIndirection(parameters, order int, valueCompiler, derivativeCompiler *Compiler, lowerIndirection []int) [][]multTerm {
	if parameters == 0 || order == 0 {
		return [][]multTerm{{{coeff: 1, lhsIndex: 0, rhsIndex: 0}}}
	}

	vSize := len(valueCompiler.multIndirection)
	dSize := len(derivativeCompiler.multIndirection)
	mult := make([][]multTerm, vSize+dSize)

	// value block: row slices are shared with the immutable sub-compiler
	copy(mult, valueCompiler.multIndirection)

	for i := 0; i < dSize; i++ {
		dRow := derivativeCompiler.multIndirection[i]

		// product rule: two cross terms per sub-term
		row := make([]multTerm, 0, len(dRow)*2)
		for _, term := range dRow {
			row = append(row,
				multTerm{term.coeff, lowerIndirection[term.lhsIndex], vSize + term.rhsIndex},
				multTerm{term.coeff, vSize + term.lhsIndex, lowerIndirection[term.rhsIndex]},
			)
		}

		// combine terms with identical (lhs, rhs) pairs
		combined := make([]multTerm, 0, len(row))
		for j := 0; j < len(row); j++ {
			if row[j].coeff == 0 {
				continue // already merged into an earlier term
			}
			termJ := row[j]
			for k := j + 1; k < len(row); k++ {
				if row[k].lhsIndex == termJ.lhsIndex && row[k].rhsIndex == termJ.rhsIndex {
					termJ.coeff += row[k].coeff
					row[k].coeff = 0
				}
			}
			combined = append(combined, termJ)
		}

		mult[vSize+i] = combined
	}

	return mult
}
