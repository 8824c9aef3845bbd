// Package dstruct: bidirectional index ↔ multi-index mapping.
//
// A multi-index is one derivation order per free parameter; its flat
// coefficient index is obtained by an iterative dive through the sizes
// table (encode), and the reverse direction is a plain lookup into the
// derivativesIndirection table (decode). Encode and decode are exact
// mutual inverses over every valid index.

package dstruct

import "fmt"

// compileDerivativesIndirection builds the index → multi-index table.
//
// Layout: the first Size(parameters-1, order) rows are the value
// sub-compiler's multi-indices padded with a trailing zero (the new
// parameter is not differentiated there); the remaining rows are the
// derivative sub-compiler's multi-indices with the last parameter's
// order incremented by one.
func compileDerivativesIndirection(parameters, order int, valueCompiler, derivativeCompiler *Compiler) [][]int {
	if parameters == 0 || order == 0 {
		return [][]int{make([]int, parameters)}
	}

	vSize := len(valueCompiler.derivativesIndirection)
	dSize := len(derivativeCompiler.derivativesIndirection)
	indirection := make([][]int, vSize+dSize)

	// value part: copy the first indices, the last one remaining 0
	for i := 0; i < vSize; i++ {
		row := make([]int, parameters)
		copy(row, valueCompiler.derivativesIndirection[i])
		indirection[i] = row
	}

	// derivative part: same indices with the last parameter bumped
	for i := 0; i < dSize; i++ {
		row := make([]int, parameters)
		copy(row, derivativeCompiler.derivativesIndirection[i])
		row[parameters-1]++
		indirection[vSize+i] = row
	}

	return indirection
}

// compileLowerIndirection builds the map from the "everything except the
// top derivation order" sub-structure into the embedding structure's
// coordinates. It is consumed only by compileMultiplicationIndirection.
//
// For parameters == 0 or order <= 1 the sub-structure is the single value
// slot, so the map is the trivial {0}.
func compileLowerIndirection(parameters, order int, valueCompiler, derivativeCompiler *Compiler) []int {
	if parameters == 0 || order <= 1 {
		return []int{0}
	}

	vSize := len(valueCompiler.lowerIndirection)
	dSize := len(derivativeCompiler.lowerIndirection)
	lower := make([]int, vSize+dSize)
	copy(lower, valueCompiler.lowerIndirection)
	for i := 0; i < dSize; i++ {
		lower[vSize+i] = valueCompiler.Size() + derivativeCompiler.lowerIndirection[i]
	}

	return lower
}

// partialDerivativeIndex encodes a multi-index into a flat coefficient
// index by walking parameters from last to first: each unit of a
// parameter's derivation order skips the value block of the remaining
// structure, adding sizes[i][m] to the index while the order budget m
// shrinks. Returns ErrOrderTooLarge when the accumulated orders exceed
// the compiler's maximum order.
func partialDerivativeIndex(parameters, order int, sizes [][]int, orders []int) (int, error) {
	index := 0
	m := order
	ordersSum := 0
	for i := parameters - 1; i >= 0; i-- {
		derivativeOrder := orders[i]

		ordersSum += derivativeOrder
		if ordersSum > order {
			return 0, fmt.Errorf("total derivation order %d exceeds %d: %w", ordersSum, order, ErrOrderTooLarge)
		}

		for ; derivativeOrder > 0; derivativeOrder-- {
			index += sizes[i][m]
			m--
		}
	}

	return index, nil
}

// convertIndex renumbers a coefficient index from a sub-compiler's index
// space into a destination (destP, destO) space: decode through the
// source indirection, zero-pad the multi-index to destP entries, then
// re-encode against the destination sizes table.
//
// Only table construction calls this, with indices it generated itself;
// a failing re-encode means the construction is broken, so it panics
// rather than returning an error.
func convertIndex(index int, srcIndirection [][]int, destP, destO int, destSizes [][]int) int {
	orders := make([]int, destP)
	src := srcIndirection[index]
	n := len(src)
	if n > destP {
		n = destP
	}
	copy(orders, src[:n])

	return mustIndex(destP, destO, destSizes, orders)
}

// mustIndex is partialDerivativeIndex for internal construction paths
// where failure is an invariant violation, not a user error.
func mustIndex(parameters, order int, sizes [][]int, orders []int) int {
	index, err := partialDerivativeIndex(parameters, order, sizes, orders)
	if err != nil {
		panic(fmt.Sprintf("dstruct: internal index conversion out of domain: %v", err))
	}

	return index
}

// PartialDerivativeIndex returns the flat array index holding the partial
// derivative whose per-parameter derivation orders are given.
//
// Errors:
//   - ErrDimensionMismatch — len(orders) != Parameters().
//   - ErrOrderTooLarge     — sum of orders exceeds Order().
func (c *Compiler) PartialDerivativeIndex(orders ...int) (int, error) {
	if len(orders) != c.parameters {
		return 0, fmt.Errorf("got %d orders for %d parameters: %w", len(orders), c.parameters, ErrDimensionMismatch)
	}

	return partialDerivativeIndex(c.parameters, c.order, c.sizes, orders)
}

// PartialDerivativeOrders returns the multi-index (one derivation order
// per free parameter) stored at the given flat array index. The returned
// slice is a fresh copy; mutating it does not affect the compiler.
//
// Errors:
//   - ErrOutOfRange — index outside [0, Size()).
func (c *Compiler) PartialDerivativeOrders(index int) ([]int, error) {
	if index < 0 || index >= c.Size() {
		return nil, fmt.Errorf("index %d outside [0, %d): %w", index, c.Size(), ErrOutOfRange)
	}
	orders := make([]int, c.parameters)
	copy(orders, c.derivativesIndirection[index])

	return orders, nil
}
