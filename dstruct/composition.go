// Package dstruct: composition table construction (multivariate Faà di Bruno).
package dstruct

import "sort"

// compileCompositionIndirection builds the per-index chain-rule terms
// expressing d^k(f∘g)/dx^k as sums of coeff · f_m(g) · Π g_{l}(x).
//
// Algorithm Outline:
//  1. For parameters == 0 or order == 0 the structure is a single value
//     slot: the table is the one-term row out[0] = f[0].
//  2. The value block is reused verbatim from the value sub-compiler
//     (coinciding index spaces, as in the multiplication table).
//  3. Each derivative-block row is obtained by differentiating the
//     corresponding (parameters, order-1) row once with respect to the
//     new parameter. A term coeff·f_m·Πg_l spawns:
//     (a) one term bumping the f factor's order to m+1 and appending a
//     first derivative of the new parameter as an extra g factor;
//     (b) for each existing g factor, one term bumping that factor's
//     derivation order with respect to the new parameter while
//     holding the others fixed.
//     This is exactly the product rule expanded across the k
//     multiplicative factors of the term.
//  4. All operand indices generated in step 3 live in the sub-compiler's
//     index space and are renumbered into the (parameters, order) space
//     through convertIndex (decode, zero-pad, re-encode).
//  5. Operand index lists are sorted, then the same exhaustive merge as
//     in the multiplication table combines terms of identical shape
//     (equal fIndex and equal sorted operand lists) by summing
//     multiplicities.
func compileCompositionIndirection(parameters, order int, valueCompiler, derivativeCompiler *Compiler, sizes [][]int, derivativesIndirection [][]int) [][]compTerm {
	if parameters == 0 || order == 0 {
		return [][]compTerm{{{coeff: 1, fIndex: 0}}}
	}

	vSize := len(valueCompiler.compIndirection)
	dSize := len(derivativeCompiler.compIndirection)
	comp := make([][]compTerm, vSize+dSize)

	// value block: row slices are shared with the immutable sub-compiler
	copy(comp, valueCompiler.compIndirection)

	orders := make([]int, parameters)

	for i := 0; i < dSize; i++ {
		var row []compTerm
		for _, term := range derivativeCompiler.compIndirection[i] {

			// (a) derive the f factor, appending ∂g/∂x_last at the end
			fBumped := compTerm{
				coeff:          term.coeff,
				fIndex:         term.fIndex + 1,
				operandIndices: make([]int, len(term.operandIndices)+1),
			}
			for k := range orders {
				orders[k] = 0
			}
			orders[parameters-1] = 1
			fBumped.operandIndices[len(term.operandIndices)] = mustIndex(parameters, order, sizes, orders)
			for j, op := range term.operandIndices {
				// renumber: the sub-compiler's mapping differs from ours
				fBumped.operandIndices[j] = convertIndex(op, derivativeCompiler.derivativesIndirection, parameters, order, sizes)
			}
			sort.Ints(fBumped.operandIndices)
			row = append(row, fBumped)

			// (b) derive each g factor in turn
			for l := range term.operandIndices {
				gBumped := compTerm{
					coeff:          term.coeff,
					fIndex:         term.fIndex,
					operandIndices: make([]int, len(term.operandIndices)),
				}
				for j, op := range term.operandIndices {
					converted := convertIndex(op, derivativeCompiler.derivativesIndirection, parameters, order, sizes)
					if j == l {
						copy(orders, derivativesIndirection[converted])
						orders[parameters-1]++
						converted = mustIndex(parameters, order, sizes, orders)
					}
					gBumped.operandIndices[j] = converted
				}
				sort.Ints(gBumped.operandIndices)
				row = append(row, gBumped)
			}
		}

		// combine terms of identical shape, exhaustively
		combined := make([]compTerm, 0, len(row))
		for j := 0; j < len(row); j++ {
			if row[j].coeff == 0 {
				continue // already merged into an earlier term
			}
			termJ := row[j]
			for k := j + 1; k < len(row); k++ {
				if sameShape(termJ, row[k]) {
					termJ.coeff += row[k].coeff
					row[k].coeff = 0
				}
			}
			combined = append(combined, termJ)
		}

		comp[vSize+i] = combined
	}

	return comp
}

// sameShape reports whether two composition terms carry the same f index
// and the same sorted operand index list, i.e. whether they may be
// merged by summing multiplicities.
func sameShape(a, b compTerm) bool {
	if a.fIndex != b.fIndex || len(a.operandIndices) != len(b.operandIndices) {
		return false
	}
	for i := range a.operandIndices {
		if a.operandIndices[i] != b.operandIndices[i] {
			return false
		}
	}

	return true
}
