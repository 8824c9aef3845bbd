// Package dstruct: arithmetic on derivative arrays.
//
// Linear operations work index-wise (derivatives of sums are sums of
// derivatives); Multiply runs the precompiled Leibniz table; Compose
// runs the precompiled Faà di Bruno table against a univariate
// coefficient array. Divide and Remainder are derived operations.
//
// Aliasing: linear operations (Add, Subtract, LinearCombination,
// Remainder) may write their result over an input in place. Multiply,
// Divide and Compose read input slots in table order while writing the
// result, so their result region must not overlap an input region.

package dstruct

import "math"

// Add computes result = lhs + rhs, index-wise.
func (c *Compiler) Add(lhs []float64, lhsOffset int, rhs []float64, rhsOffset int, result []float64, resultOffset int) error {
	if err := c.checkBinary(opAdd, lhs, lhsOffset, rhs, rhsOffset, result, resultOffset); err != nil {
		return err
	}
	for i := 0; i < c.Size(); i++ {
		result[resultOffset+i] = lhs[lhsOffset+i] + rhs[rhsOffset+i]
	}

	return nil
}

// Subtract computes result = lhs - rhs, index-wise.
func (c *Compiler) Subtract(lhs []float64, lhsOffset int, rhs []float64, rhsOffset int, result []float64, resultOffset int) error {
	if err := c.checkBinary(opSubtract, lhs, lhsOffset, rhs, rhsOffset, result, resultOffset); err != nil {
		return err
	}
	for i := 0; i < c.Size(); i++ {
		result[resultOffset+i] = lhs[lhsOffset+i] - rhs[rhsOffset+i]
	}

	return nil
}

// LinearCombination computes result = Σ operands[k].A · operands[k].DS,
// index-wise. With no operands the result is the zero structure. The
// result region may alias any operand region.
func (c *Compiler) LinearCombination(result []float64, resultOffset int, operands ...Operand) error {
	if err := c.checkArray(result, resultOffset); err != nil {
		return dsErrorf(opLinComb, err)
	}
	for _, operand := range operands {
		if err := c.checkArray(operand.DS, operand.Offset); err != nil {
			return dsErrorf(opLinComb, err)
		}
	}

	for i := 0; i < c.Size(); i++ {
		var sum float64
		for _, operand := range operands {
			sum += operand.A * operand.DS[operand.Offset+i]
		}
		result[resultOffset+i] = sum
	}

	return nil
}

// Multiply computes result = lhs · rhs through the multiplication table
// (generalized Leibniz rule). The result region must not overlap either
// operand region.
func (c *Compiler) Multiply(lhs []float64, lhsOffset int, rhs []float64, rhsOffset int, result []float64, resultOffset int) error {
	if err := c.checkBinary(opMultiply, lhs, lhsOffset, rhs, rhsOffset, result, resultOffset); err != nil {
		return err
	}
	c.multiply(lhs, lhsOffset, rhs, rhsOffset, result, resultOffset)

	return nil
}

func (c *Compiler) multiply(lhs []float64, lhsOffset int, rhs []float64, rhsOffset int, result []float64, resultOffset int) {
	for i, row := range c.multIndirection {
		var r float64
		for _, term := range row {
			r += float64(term.coeff) * lhs[lhsOffset+term.lhsIndex] * rhs[rhsOffset+term.rhsIndex]
		}
		result[resultOffset+i] = r
	}
}

// Divide computes result = lhs / rhs as lhs · rhs⁻¹, the reciprocal
// coming from PowInt(rhs, -1). Division by a structure whose value is
// zero therefore follows pow semantics: ±Inf/NaN propagate through the
// array, no error is reported. The result region must not overlap
// either operand region.
func (c *Compiler) Divide(lhs []float64, lhsOffset int, rhs []float64, rhsOffset int, result []float64, resultOffset int) error {
	if err := c.checkBinary(opDivide, lhs, lhsOffset, rhs, rhsOffset, result, resultOffset); err != nil {
		return err
	}
	reciprocal := make([]float64, c.Size())
	c.powInt(rhs, rhsOffset, -1, reciprocal, 0)
	c.multiply(lhs, lhsOffset, reciprocal, 0, result, resultOffset)

	return nil
}

// Remainder computes the IEEE 754 remainder of the two values and
// subtracts k·rhs index-wise from the derivative slots, where
// k = roundToEven((lhs - rem)/rhs) is treated as locally constant.
//
// The locally-constant-k convention makes the derivatives discontinuous
// at exact multiples of the divisor; callers differentiating across that
// boundary get the one-sided convention, not a smoothed value.
func (c *Compiler) Remainder(lhs []float64, lhsOffset int, rhs []float64, rhsOffset int, result []float64, resultOffset int) error {
	if err := c.checkBinary(opRemainder, lhs, lhsOffset, rhs, rhsOffset, result, resultOffset); err != nil {
		return err
	}

	rem := math.Remainder(lhs[lhsOffset], rhs[rhsOffset])
	k := math.RoundToEven((lhs[lhsOffset] - rem) / rhs[rhsOffset])

	result[resultOffset] = rem
	for i := 1; i < c.Size(); i++ {
		result[resultOffset+i] = lhs[lhsOffset+i] - k*rhs[rhsOffset+i]
	}

	return nil
}

// Compose combines a univariate coefficient array f with a multivariate
// operand through the composition table: f holds the value and
// successive derivatives [h(g₀), h'(g₀), h''(g₀), ...] of an outer
// function h at the operand's value, and the result is the derivative
// structure of h∘g. Every elementary function in this package is built
// on this operation. The result region must not overlap the operand
// region.
func (c *Compiler) Compose(operand []float64, operandOffset int, f []float64, result []float64, resultOffset int) error {
	if err := c.checkUnary(opCompose, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	if err := c.checkUnivariate(f); err != nil {
		return dsErrorf(opCompose, err)
	}
	c.compose(operand, operandOffset, f, result, resultOffset)

	return nil
}

func (c *Compiler) compose(operand []float64, operandOffset int, f []float64, result []float64, resultOffset int) {
	for i, row := range c.compIndirection {
		var r float64
		for _, term := range row {
			product := float64(term.coeff) * f[term.fIndex]
			for _, opIndex := range term.operandIndices {
				product *= operand[operandOffset+opIndex]
			}
			r += product
		}
		result[resultOffset+i] = r
	}
}
