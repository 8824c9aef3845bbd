package dstruct_test

import (
	"fmt"

	"github.com/katalvlaran/lvldiff/dstruct"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleCompiler_Multiply
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Differentiate z = x·y at x=2, y=3 up to order 2 in both variables.
//	The product rule falls out of the precompiled Leibniz table: no
//	symbolic work happens at call time.
//
// Complexity: O(table size) per operation.
func ExampleCompiler_Multiply() {
	c, _ := dstruct.GetCompiler(2, 2)

	x := make([]float64, c.Size())
	y := make([]float64, c.Size())
	x[0] = 2.0
	y[0] = 3.0
	ix, _ := c.PartialDerivativeIndex(1, 0) // ∂/∂x slot
	iy, _ := c.PartialDerivativeIndex(0, 1) // ∂/∂y slot
	x[ix] = 1.0
	y[iy] = 1.0

	z := make([]float64, c.Size())
	_ = c.Multiply(x, 0, y, 0, z, 0)

	ixy, _ := c.PartialDerivativeIndex(1, 1)
	fmt.Printf("z      = %.1f\n", z[0])
	fmt.Printf("dz/dx  = %.1f\n", z[ix])
	fmt.Printf("dz/dy  = %.1f\n", z[iy])
	fmt.Printf("d2z/dxdy = %.1f\n", z[ixy])
	// Output:
	// z      = 6.0
	// dz/dx  = 3.0
	// dz/dy  = 2.0
	// d2z/dxdy = 1.0
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleCompiler_Taylor
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Expand f(x) = x³ around x = 2 to order 3, then evaluate the
//	expansion half a unit away. A cubic is its own third-order Taylor
//	polynomial, so the result is exact.
func ExampleCompiler_Taylor() {
	c, _ := dstruct.GetCompiler(1, 3)

	x := make([]float64, c.Size())
	x[0] = 2.0
	x[1] = 1.0 // d x/dx

	cube := make([]float64, c.Size())
	_ = c.PowInt(x, 0, 3, cube, 0)

	shifted, _ := c.Taylor(cube, 0, 0.5)
	fmt.Printf("(2.5)^3 = %.4f\n", shifted)
	// Output:
	// (2.5)^3 = 15.6250
}
