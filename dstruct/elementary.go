// Package dstruct: elementary and transcendental functions.
//
// Every function here follows the same two-step scheme: first compute
// the order+1 univariate Taylor coefficients [h(v), h'(v), h''(v), ...]
// of the elementary function h at the operand's value v, by a
// closed-form recurrence, then delegate to the composition table to
// expand them into the full multivariate derivative structure.
//
// Recurrence families:
//   - exp/log: geometric-style coefficient chains
//   - sin/cos and sinh/cosh: two-step cycles with sign flips
//   - tan/tanh: recurrence on an auxiliary polynomial P_n(t) in t = tan v
//   - inverse trig/hyperbolic: polynomial recurrences in a transformed
//     variable divided by powers of 1±v²
//
// Domain issues (log of a negative value, asin outside [-1, 1], 0 raised
// to a negative power, ...) are never reported as errors: the scalar
// coefficients come out NaN/±Inf and propagate through the composition,
// exactly as package math would behave on plain float64.

package dstruct

import "math"

// Operation tags for error wrapping.
const (
	opExp       = "Exp"
	opExpm1     = "Expm1"
	opLog       = "Log"
	opLog1p     = "Log1p"
	opLog10     = "Log10"
	opSin       = "Sin"
	opCos       = "Cos"
	opTan       = "Tan"
	opAsin      = "Asin"
	opAcos      = "Acos"
	opAtan      = "Atan"
	opAtan2     = "Atan2"
	opSinh      = "Sinh"
	opCosh      = "Cosh"
	opTanh      = "Tanh"
	opAsinh     = "Asinh"
	opAcosh     = "Acosh"
	opAtanh     = "Atanh"
	opPow       = "Pow"
	opPowInt    = "PowInt"
	opPowScalar = "PowScalar"
	opPowDS     = "PowDS"
	opRootN     = "RootN"
)

// Exp computes result = exp(operand).
func (c *Compiler) Exp(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opExp, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	c.exp(operand, operandOffset, result, resultOffset)

	return nil
}

func (c *Compiler) exp(operand []float64, operandOffset int, result []float64, resultOffset int) {
	function := make([]float64, 1+c.order)
	e := math.Exp(operand[operandOffset])
	for i := range function {
		function[i] = e
	}
	c.compose(operand, operandOffset, function, result, resultOffset)
}

// Expm1 computes result = exp(operand) - 1, keeping the extra accuracy
// of math.Expm1 in the value slot; derivative coefficients equal those
// of exp.
func (c *Compiler) Expm1(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opExpm1, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	function[0] = math.Expm1(operand[operandOffset])
	e := math.Exp(operand[operandOffset])
	for i := 1; i <= c.order; i++ {
		function[i] = e
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Log computes result = ln(operand). A non-positive value yields
// NaN/-Inf coefficients, never an error.
func (c *Compiler) Log(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opLog, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	c.log(operand, operandOffset, result, resultOffset)

	return nil
}

func (c *Compiler) log(operand []float64, operandOffset int, result []float64, resultOffset int) {
	function := make([]float64, 1+c.order)
	function[0] = math.Log(operand[operandOffset])
	if c.order > 0 {
		// ln'(v) = 1/v, then each derivative multiplies by -k/v
		inv := 1.0 / operand[operandOffset]
		xk := inv
		for i := 1; i <= c.order; i++ {
			function[i] = xk
			xk *= float64(-i) * inv
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)
}

// Log1p computes result = ln(1 + operand).
func (c *Compiler) Log1p(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opLog1p, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	function[0] = math.Log1p(operand[operandOffset])
	if c.order > 0 {
		inv := 1.0 / (1.0 + operand[operandOffset])
		xk := inv
		for i := 1; i <= c.order; i++ {
			function[i] = xk
			xk *= float64(-i) * inv
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Log10 computes result = log₁₀(operand).
func (c *Compiler) Log10(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opLog10, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	function[0] = math.Log10(operand[operandOffset])
	if c.order > 0 {
		inv := 1.0 / operand[operandOffset]
		xk := inv / math.Ln10
		for i := 1; i <= c.order; i++ {
			function[i] = xk
			xk *= float64(-i) * inv
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Sin computes result = sin(operand). Successive coefficients cycle
// through sin, cos, -sin, -cos.
func (c *Compiler) Sin(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opSin, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	s, cs := math.Sincos(operand[operandOffset])
	function[0] = s
	if c.order > 0 {
		function[1] = cs
		for i := 2; i <= c.order; i++ {
			function[i] = -function[i-2]
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Cos computes result = cos(operand).
func (c *Compiler) Cos(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opCos, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	s, cs := math.Sincos(operand[operandOffset])
	function[0] = cs
	if c.order > 0 {
		function[1] = -s
		for i := 2; i <= c.order; i++ {
			function[i] = -function[i-2]
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Tan computes result = tan(operand).
//
// The nth derivative of tan is P_n(tan v) where P_n is a degree n+1
// polynomial with the parity of n+1: P₁(t) = 1 + t², and
// P_n(t) = (1 + t²)·P'_{n-1}(t). Thanks to the parity the coefficients
// of P_{n-1} and P_n share one array.
func (c *Compiler) Tan(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opTan, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	t := math.Tan(operand[operandOffset])
	function[0] = t

	if c.order > 0 {
		p := make([]float64, c.order+2)
		p[1] = 1
		t2 := t * t
		for n := 1; n <= c.order; n++ {
			var v float64
			p[n+1] = float64(n) * p[n]
			for k := n + 1; k >= 0; k -= 2 {
				v = v*t2 + p[k]
				if k > 2 {
					p[k-2] = float64(k-1)*p[k-1] + float64(k-3)*p[k-3]
				} else if k == 2 {
					p[0] = p[1]
				}
			}
			if n&1 == 0 {
				v *= t
			}
			function[n] = v
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Asin computes result = asin(operand).
//
// The nth derivative of asin is P_n(v) / (1 - v²)^((2n-1)/2) where P_n
// is a degree n-1 polynomial with the parity of n-1: P₁(v) = 1 and
// P_n(v) = (1 - v²)·P'_{n-1}(v) + (2n - 3)·v·P_{n-1}(v).
func (c *Compiler) Asin(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opAsin, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	x := operand[operandOffset]
	function[0] = math.Asin(x)
	if c.order > 0 {
		p := make([]float64, c.order)
		p[0] = 1
		x2 := x * x
		f := 1.0 / (1 - x2)
		coeff := math.Sqrt(f)
		function[1] = coeff * p[0]
		for n := 2; n <= c.order; n++ {
			var v float64
			p[n-1] = float64(n-1) * p[n-2]
			for k := n - 1; k >= 0; k -= 2 {
				v = v*x2 + p[k]
				if k > 2 {
					p[k-2] = float64(k-1)*p[k-1] + float64(2*n-k)*p[k-3]
				} else if k == 2 {
					p[0] = p[1]
				}
			}
			if n&1 == 0 {
				v *= x
			}
			coeff *= f
			function[n] = coeff * v
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Acos computes result = acos(operand). Same recurrence as Asin with the
// opposite starting polynomial, P₁(v) = -1.
func (c *Compiler) Acos(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opAcos, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	x := operand[operandOffset]
	function[0] = math.Acos(x)
	if c.order > 0 {
		p := make([]float64, c.order)
		p[0] = -1
		x2 := x * x
		f := 1.0 / (1 - x2)
		coeff := math.Sqrt(f)
		function[1] = coeff * p[0]
		for n := 2; n <= c.order; n++ {
			var v float64
			p[n-1] = float64(n-1) * p[n-2]
			for k := n - 1; k >= 0; k -= 2 {
				v = v*x2 + p[k]
				if k > 2 {
					p[k-2] = float64(k-1)*p[k-1] + float64(2*n-k)*p[k-3]
				} else if k == 2 {
					p[0] = p[1]
				}
			}
			if n&1 == 0 {
				v *= x
			}
			coeff *= f
			function[n] = coeff * v
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Atan computes result = atan(operand).
//
// The nth derivative of atan is Q_n(v) / (1 + v²)^n where Q_n is a
// degree n-1 polynomial with the parity of n-1: Q₁(v) = 1 and
// Q_n(v) = (1 + v²)·Q'_{n-1}(v) - 2(n - 1)·v·Q_{n-1}(v).
func (c *Compiler) Atan(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opAtan, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	c.atan(operand, operandOffset, result, resultOffset)

	return nil
}

func (c *Compiler) atan(operand []float64, operandOffset int, result []float64, resultOffset int) {
	function := make([]float64, 1+c.order)
	x := operand[operandOffset]
	function[0] = math.Atan(x)
	if c.order > 0 {
		q := make([]float64, c.order)
		q[0] = 1
		x2 := x * x
		f := 1.0 / (1 + x2)
		coeff := f
		function[1] = coeff * q[0]
		for n := 2; n <= c.order; n++ {
			var v float64
			q[n-1] = float64(-n) * q[n-2]
			for k := n - 1; k >= 0; k -= 2 {
				v = v*x2 + q[k]
				if k > 2 {
					q[k-2] = float64(k-1)*q[k-1] + float64(k-1-2*n)*q[k-3]
				} else if k == 2 {
					q[0] = q[1]
				}
			}
			if n&1 == 0 {
				v *= x
			}
			coeff *= f
			function[n] = coeff * v
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)
}

// Atan2 computes result = atan2(y, x), the two-argument arc tangent.
//
// To stay clear of the cancellation-prone region near the branch cut the
// derivatives are computed from r = sqrt(x² + y²) with a branch on the
// sign of x: 2·atan(y/(r+x)) for x ≥ 0, else ±π - 2·atan(y/(r-x)).
// The value slot alone is then unconditionally overwritten with the
// plain math.Atan2 of the two values, which handles signed zeros and
// infinite inputs exactly; the generic branches do not.
func (c *Compiler) Atan2(y []float64, yOffset int, x []float64, xOffset int, result []float64, resultOffset int) error {
	if err := c.checkBinary(opAtan2, y, yOffset, x, xOffset, result, resultOffset); err != nil {
		return err
	}
	n := c.Size()
	tmp1 := make([]float64, n)
	tmp2 := make([]float64, n)
	reciprocal := make([]float64, n)

	c.multiply(x, xOffset, x, xOffset, tmp1, 0) // x²
	c.multiply(y, yOffset, y, yOffset, tmp2, 0) // y²
	for i := 0; i < n; i++ {
		tmp2[i] += tmp1[i] // x² + y²
	}
	c.rootN(tmp2, 0, 2, tmp1, 0) // r = sqrt(x² + y²)

	if x[xOffset] >= 0 {
		// atan2(y, x) = 2·atan(y / (r + x))
		for i := 0; i < n; i++ {
			tmp2[i] = tmp1[i] + x[xOffset+i] // r + x
		}
		c.powInt(tmp2, 0, -1, reciprocal, 0)
		c.multiply(y, yOffset, reciprocal, 0, tmp1, 0) // y / (r + x)
		c.atan(tmp1, 0, tmp2, 0)
		for i := 0; i < n; i++ {
			result[resultOffset+i] = 2 * tmp2[i]
		}
	} else {
		// atan2(y, x) = ±π - 2·atan(y / (r - x))
		for i := 0; i < n; i++ {
			tmp2[i] = tmp1[i] - x[xOffset+i] // r - x
		}
		c.powInt(tmp2, 0, -1, reciprocal, 0)
		c.multiply(y, yOffset, reciprocal, 0, tmp1, 0) // y / (r - x)
		c.atan(tmp1, 0, tmp2, 0)
		if tmp2[0] <= 0 {
			result[resultOffset] = -math.Pi - 2*tmp2[0]
		} else {
			result[resultOffset] = math.Pi - 2*tmp2[0]
		}
		for i := 1; i < n; i++ {
			result[resultOffset+i] = -2 * tmp2[i]
		}
	}

	// exact special cases (±0, ±Inf): the scalar atan2 wins on the value
	result[resultOffset] = math.Atan2(y[yOffset], x[xOffset])

	return nil
}

// Sinh computes result = sinh(operand). Coefficients alternate
// sinh, cosh.
func (c *Compiler) Sinh(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opSinh, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	function[0] = math.Sinh(operand[operandOffset])
	if c.order > 0 {
		function[1] = math.Cosh(operand[operandOffset])
		for i := 2; i <= c.order; i++ {
			function[i] = function[i-2]
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Cosh computes result = cosh(operand).
func (c *Compiler) Cosh(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opCosh, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	function[0] = math.Cosh(operand[operandOffset])
	if c.order > 0 {
		function[1] = math.Sinh(operand[operandOffset])
		for i := 2; i <= c.order; i++ {
			function[i] = function[i-2]
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Tanh computes result = tanh(operand). Same auxiliary-polynomial scheme
// as Tan with P_n(t) = (1 - t²)·P'_{n-1}(t), t = tanh v.
func (c *Compiler) Tanh(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opTanh, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	t := math.Tanh(operand[operandOffset])
	function[0] = t

	if c.order > 0 {
		p := make([]float64, c.order+2)
		p[1] = 1
		t2 := t * t
		for n := 1; n <= c.order; n++ {
			var v float64
			p[n+1] = float64(-n) * p[n]
			for k := n + 1; k >= 0; k -= 2 {
				v = v*t2 + p[k]
				if k > 2 {
					p[k-2] = float64(k-1)*p[k-1] - float64(k-3)*p[k-3]
				} else if k == 2 {
					p[0] = p[1]
				}
			}
			if n&1 == 0 {
				v *= t
			}
			function[n] = v
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Asinh computes result = asinh(operand).
//
// nth derivative: P_n(v) / (v² + 1)^((2n-1)/2) with P₁(v) = 1 and
// P_n(v) = (v² + 1)·P'_{n-1}(v) - (2n - 3)·v·P_{n-1}(v).
func (c *Compiler) Asinh(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opAsinh, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	x := operand[operandOffset]
	function[0] = math.Asinh(x)
	if c.order > 0 {
		p := make([]float64, c.order)
		p[0] = 1
		x2 := x * x
		f := 1.0 / (1 + x2)
		coeff := math.Sqrt(f)
		function[1] = coeff * p[0]
		for n := 2; n <= c.order; n++ {
			var v float64
			p[n-1] = float64(1-n) * p[n-2]
			for k := n - 1; k >= 0; k -= 2 {
				v = v*x2 + p[k]
				if k > 2 {
					p[k-2] = float64(k-1)*p[k-1] + float64(k-2*n)*p[k-3]
				} else if k == 2 {
					p[0] = p[1]
				}
			}
			if n&1 == 0 {
				v *= x
			}
			coeff *= f
			function[n] = coeff * v
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Acosh computes result = acosh(operand).
//
// nth derivative: P_n(v) / (v² - 1)^((2n-1)/2) with P₁(v) = 1 and
// P_n(v) = (v² - 1)·P'_{n-1}(v) - (2n - 3)·v·P_{n-1}(v).
func (c *Compiler) Acosh(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opAcosh, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	x := operand[operandOffset]
	function[0] = math.Acosh(x)
	if c.order > 0 {
		p := make([]float64, c.order)
		p[0] = 1
		x2 := x * x
		f := 1.0 / (x2 - 1)
		coeff := math.Sqrt(f)
		function[1] = coeff * p[0]
		for n := 2; n <= c.order; n++ {
			var v float64
			p[n-1] = float64(1-n) * p[n-2]
			for k := n - 1; k >= 0; k -= 2 {
				v = v*x2 + p[k]
				if k > 2 {
					p[k-2] = float64(1-k)*p[k-1] + float64(k-2*n)*p[k-3]
				} else if k == 2 {
					p[0] = -p[1]
				}
			}
			if n&1 == 0 {
				v *= x
			}
			coeff *= f
			function[n] = coeff * v
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Atanh computes result = atanh(operand).
//
// nth derivative: Q_n(v) / (1 - v²)^n with Q₁(v) = 1 and
// Q_n(v) = (1 - v²)·Q'_{n-1}(v) + 2(n - 1)·v·Q_{n-1}(v).
func (c *Compiler) Atanh(operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opAtanh, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	function := make([]float64, 1+c.order)
	x := operand[operandOffset]
	function[0] = math.Atanh(x)
	if c.order > 0 {
		q := make([]float64, c.order)
		q[0] = 1
		x2 := x * x
		f := 1.0 / (1 - x2)
		coeff := f
		function[1] = coeff * q[0]
		for n := 2; n <= c.order; n++ {
			var v float64
			q[n-1] = float64(n) * q[n-2]
			for k := n - 1; k >= 0; k -= 2 {
				v = v*x2 + q[k]
				if k > 2 {
					q[k-2] = float64(k-1)*q[k-1] + float64(2*n-k+1)*q[k-3]
				} else if k == 2 {
					q[0] = q[1]
				}
			}
			if n&1 == 0 {
				v *= x
			}
			coeff *= f
			function[n] = coeff * v
		}
	}
	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// Pow computes result = operand^p for a real exponent p.
//
// p == 0 yields the constant structure 1 for every operand, including
// NaN values. A zero operand value with negative or fractional p
// produces ±Inf/NaN coefficients through the plain float64 power chain.
func (c *Compiler) Pow(operand []float64, operandOffset int, p float64, result []float64, resultOffset int) error {
	if err := c.checkUnary(opPow, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}

	if p == 0 {
		result[resultOffset] = 1
		for i := 1; i < c.Size(); i++ {
			result[resultOffset+i] = 0
		}

		return nil
	}

	// [v^p, p·v^(p-1), p(p-1)·v^(p-2), ...]
	function := make([]float64, 1+c.order)
	xk := math.Pow(operand[operandOffset], p-float64(c.order))
	for i := c.order; i > 0; i-- {
		function[i] = xk
		xk *= operand[operandOffset]
	}
	function[0] = xk
	coefficient := p
	for i := 1; i <= c.order; i++ {
		function[i] *= coefficient
		coefficient *= p - float64(i)
	}

	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// PowInt computes result = operand^n for an integer exponent n.
func (c *Compiler) PowInt(operand []float64, operandOffset int, n int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opPowInt, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	c.powInt(operand, operandOffset, n, result, resultOffset)

	return nil
}

func (c *Compiler) powInt(operand []float64, operandOffset int, n int, result []float64, resultOffset int) {
	if n == 0 {
		// v^0 = 1 for every v
		result[resultOffset] = 1
		for i := 1; i < c.Size(); i++ {
			result[resultOffset+i] = 0
		}

		return
	}

	// [v^n, n·v^(n-1), n(n-1)·v^(n-2), ...]
	function := make([]float64, 1+c.order)
	if n > 0 {
		// for n < order high derivatives vanish; start the power chain
		// at the first non-zero one
		maxOrder := c.order
		if n < maxOrder {
			maxOrder = n
		}
		xk := math.Pow(operand[operandOffset], float64(n-maxOrder))
		for i := maxOrder; i > 0; i-- {
			function[i] = xk
			xk *= operand[operandOffset]
		}
		function[0] = xk
	} else {
		inv := 1.0 / operand[operandOffset]
		xk := math.Pow(inv, float64(-n))
		for i := 0; i <= c.order; i++ {
			function[i] = xk
			xk *= inv
		}
	}
	coefficient := float64(n)
	for i := 1; i <= c.order; i++ {
		function[i] *= coefficient
		coefficient *= float64(n - i)
	}

	c.compose(operand, operandOffset, function, result, resultOffset)
}

// PowScalar computes result = a^operand for a scalar base a.
//
// Edge patterns for a == 0 follow the limiting behavior of a^v:
//   - operand value == 0: value slot 1, derivative coefficients
//     alternating -Inf, +Inf, -Inf, ...
//   - operand value < 0: every coefficient NaN
//   - operand value > 0: the all-zero constant 0
func (c *Compiler) PowScalar(a float64, operand []float64, operandOffset int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opPowScalar, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}

	// [a^v, ln(a)·a^v, ln(a)²·a^v, ...]
	function := make([]float64, 1+c.order)
	if a == 0 {
		if operand[operandOffset] == 0 {
			function[0] = 1
			infinity := math.Inf(1)
			for i := 1; i < len(function); i++ {
				infinity = -infinity
				function[i] = infinity
			}
		} else if operand[operandOffset] < 0 {
			for i := range function {
				function[i] = math.NaN()
			}
		}
	} else {
		function[0] = math.Pow(a, operand[operandOffset])
		lnA := math.Log(a)
		for i := 1; i < len(function); i++ {
			function[i] = lnA * function[i-1]
		}
	}

	c.compose(operand, operandOffset, function, result, resultOffset)

	return nil
}

// PowDS computes result = x^y for two derivative structures, as
// exp(y·ln x). Non-positive x values yield NaN/Inf propagation through
// the logarithm.
func (c *Compiler) PowDS(x []float64, xOffset int, y []float64, yOffset int, result []float64, resultOffset int) error {
	if err := c.checkBinary(opPowDS, x, xOffset, y, yOffset, result, resultOffset); err != nil {
		return err
	}
	logX := make([]float64, c.Size())
	c.log(x, xOffset, logX, 0)
	yLogX := make([]float64, c.Size())
	c.multiply(logX, 0, y, yOffset, yLogX, 0)
	c.exp(yLogX, 0, result, resultOffset)

	return nil
}

// RootN computes result = operand^(1/n), the nth root.
func (c *Compiler) RootN(operand []float64, operandOffset int, n int, result []float64, resultOffset int) error {
	if err := c.checkUnary(opRootN, operand, operandOffset, result, resultOffset); err != nil {
		return err
	}
	c.rootN(operand, operandOffset, n, result, resultOffset)

	return nil
}

func (c *Compiler) rootN(operand []float64, operandOffset int, n int, result []float64, resultOffset int) {
	// [v^(1/n), (1/n)·v^(1/n-1), ...]; the value goes through the
	// dedicated sqrt/cbrt entry points for accuracy
	function := make([]float64, 1+c.order)
	var xk float64
	switch {
	case n == 2:
		function[0] = math.Sqrt(operand[operandOffset])
		xk = 0.5 / function[0]
	case n == 3:
		function[0] = math.Cbrt(operand[operandOffset])
		xk = 1.0 / (3.0 * function[0] * function[0])
	default:
		function[0] = math.Pow(operand[operandOffset], 1.0/float64(n))
		xk = 1.0 / (float64(n) * math.Pow(function[0], float64(n-1)))
	}
	nReciprocal := 1.0 / float64(n)
	xReciprocal := 1.0 / operand[operandOffset]
	for i := 1; i <= c.order; i++ {
		function[i] = xk
		xk *= xReciprocal * (nReciprocal - float64(i))
	}

	c.compose(operand, operandOffset, function, result, resultOffset)
}
