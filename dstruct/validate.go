// Package dstruct: central argument validators.
// Every public operation validates through these helpers before touching
// its kernel, so kernels can index freely without bounds surprises.
// Validators return plain sentinels; facades wrap with an operation tag
// via dsErrorf, preserving errors.Is matching.

package dstruct

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSubtract  = "Subtract"
	opLinComb   = "LinearCombination"
	opMultiply  = "Multiply"
	opDivide    = "Divide"
	opRemainder = "Remainder"
	opCompose   = "Compose"
	opTaylor    = "Taylor"
)

// dsErrorf wraps err with an operation tag, preserving the original
// sentinel via %w. Call only with non-nil err.
func dsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// checkArray verifies that ds can hold a full derivative structure
// starting at offset.
func (c *Compiler) checkArray(ds []float64, offset int) error {
	if offset < 0 || len(ds)-offset < c.Size() {
		return ErrShortArray
	}

	return nil
}

// checkUnary validates one operand/result pair.
func (c *Compiler) checkUnary(op string, operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkArray(operand, operandOffset); err != nil {
		return dsErrorf(op, err)
	}
	if err := c.checkArray(result, resultOffset); err != nil {
		return dsErrorf(op, err)
	}

	return nil
}

// checkBinary validates two operands and the result array.
func (c *Compiler) checkBinary(op string, lhs []float64, lhsOffset int, rhs []float64, rhsOffset int, result []float64, resultOffset int) error {
	if err := c.checkArray(lhs, lhsOffset); err != nil {
		return dsErrorf(op, err)
	}
	if err := c.checkArray(rhs, rhsOffset); err != nil {
		return dsErrorf(op, err)
	}
	if err := c.checkArray(result, resultOffset); err != nil {
		return dsErrorf(op, err)
	}

	return nil
}

// checkUnivariate verifies that f holds at least order+1 univariate
// Taylor coefficients.
func (c *Compiler) checkUnivariate(f []float64) error {
	if len(f) < c.order+1 {
		return ErrShortArray
	}

	return nil
}
