// Package grad: sparse gradient type and its first-order algebra.
package grad

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrUnknownVariable is returned by Taylor when a gradient depends on a
// variable index for which no offset was supplied.
var ErrUnknownVariable = errors.New("grad: no offset supplied for variable index")

// Gradient holds a value and its sparse first-order partial derivatives.
// The zero value is the constant 0. Gradients are immutable: every
// operation allocates its result and never touches its receiver or
// arguments.
type Gradient struct {
	value       float64
	derivatives map[int]float64
}

// Constant returns the gradient of a constant: no derivatives at all.
func Constant(value float64) *Gradient {
	return &Gradient{value: value}
}

// Variable returns the gradient of free parameter index with the given
// value: ∂/∂x_index is 1, everything else 0. A negative index is a
// programmer error and panics.
func Variable(index int, value float64) *Gradient {
	if index < 0 {
		panic(fmt.Sprintf("grad: negative variable index %d", index))
	}

	return &Gradient{value: value, derivatives: map[int]float64{index: 1}}
}

// Value returns the function value.
func (g *Gradient) Value() float64 { return g.value }

// Partial returns the first partial derivative with respect to the
// given variable index; variables the gradient does not depend on
// report 0.
func (g *Gradient) Partial(index int) float64 { return g.derivatives[index] }

// Partials returns a fresh copy of the sparse derivative map.
func (g *Gradient) Partials() map[int]float64 {
	out := make(map[int]float64, len(g.derivatives))
	for k, v := range g.derivatives {
		out[k] = v
	}

	return out
}

// NumDependencies returns how many variables the gradient depends on.
func (g *Gradient) NumDependencies() int { return len(g.derivatives) }

// Cmp compares function values only, ignoring derivatives: -1 if
// g < o, 0 if equal, +1 if g > o. With NaN on either side every
// ordering test is false, so Cmp returns 0; check math.IsNaN first
// when NaN is possible.
func (g *Gradient) Cmp(o *Gradient) int {
	switch {
	case g.value < o.value:
		return -1
	case g.value > o.value:
		return 1
	default:
		return 0
	}
}

// EqualValues reports whether the function values of g and o agree
// within the absolute tolerance tol. Derivatives are not compared.
func (g *Gradient) EqualValues(o *Gradient, tol float64) bool {
	return scalar.EqualWithinAbs(g.value, o.value, tol)
}

// fresh allocates a result with capacity for the union of two
// dependency sets.
func fresh(value float64, capacity int) *Gradient {
	return &Gradient{value: value, derivatives: make(map[int]float64, capacity)}
}

// Add returns g + o.
func (g *Gradient) Add(o *Gradient) *Gradient {
	out := fresh(g.value+o.value, len(g.derivatives)+len(o.derivatives))
	for k, v := range g.derivatives {
		out.derivatives[k] = v
	}
	for k, v := range o.derivatives {
		out.derivatives[k] += v
	}

	return out
}

// Sub returns g - o.
func (g *Gradient) Sub(o *Gradient) *Gradient {
	out := fresh(g.value-o.value, len(g.derivatives)+len(o.derivatives))
	for k, v := range g.derivatives {
		out.derivatives[k] = v
	}
	for k, v := range o.derivatives {
		out.derivatives[k] -= v
	}

	return out
}

// Neg returns -g.
func (g *Gradient) Neg() *Gradient {
	out := fresh(-g.value, len(g.derivatives))
	for k, v := range g.derivatives {
		out.derivatives[k] = -v
	}

	return out
}

// Scale returns a·g for a scalar a.
func (g *Gradient) Scale(a float64) *Gradient {
	out := fresh(a*g.value, len(g.derivatives))
	for k, v := range g.derivatives {
		out.derivatives[k] = a * v
	}

	return out
}

// Mul returns g·o by the product rule.
func (g *Gradient) Mul(o *Gradient) *Gradient {
	out := fresh(g.value*o.value, len(g.derivatives)+len(o.derivatives))
	for k, v := range g.derivatives {
		out.derivatives[k] = v * o.value
	}
	for k, v := range o.derivatives {
		out.derivatives[k] += v * g.value
	}

	return out
}

// Div returns g/o by the quotient rule. A zero divisor value floods the
// result with ±Inf/NaN, never an error.
func (g *Gradient) Div(o *Gradient) *Gradient {
	inv := 1.0 / o.value
	out := fresh(g.value*inv, len(g.derivatives)+len(o.derivatives))
	for k, v := range g.derivatives {
		out.derivatives[k] = v * inv
	}
	scale := g.value * inv * inv
	for k, v := range o.derivatives {
		out.derivatives[k] -= v * scale
	}

	return out
}

// Remainder returns the IEEE 754 remainder of g by o, with the integer
// quotient treated as locally constant; the derivative convention is
// discontinuous at exact multiples of the divisor.
func (g *Gradient) Remainder(o *Gradient) *Gradient {
	rem := math.Remainder(g.value, o.value)
	k := math.RoundToEven((g.value - rem) / o.value)
	out := fresh(rem, len(g.derivatives)+len(o.derivatives))
	for key, v := range g.derivatives {
		out.derivatives[key] = v
	}
	for key, v := range o.derivatives {
		out.derivatives[key] -= k * v
	}

	return out
}

// compose applies the first-order chain rule: the result has value f0
// and every derivative multiplied by f1 = f'(g.value).
func (g *Gradient) compose(f0, f1 float64) *Gradient {
	out := fresh(f0, len(g.derivatives))
	for k, v := range g.derivatives {
		out.derivatives[k] = f1 * v
	}

	return out
}

// Exp returns e^g.
func (g *Gradient) Exp() *Gradient {
	e := math.Exp(g.value)

	return g.compose(e, e)
}

// Expm1 returns e^g - 1.
func (g *Gradient) Expm1() *Gradient {
	return g.compose(math.Expm1(g.value), math.Exp(g.value))
}

// Log returns ln(g).
func (g *Gradient) Log() *Gradient {
	return g.compose(math.Log(g.value), 1.0/g.value)
}

// Log1p returns ln(1 + g).
func (g *Gradient) Log1p() *Gradient {
	return g.compose(math.Log1p(g.value), 1.0/(1.0+g.value))
}

// Log10 returns log₁₀(g).
func (g *Gradient) Log10() *Gradient {
	return g.compose(math.Log10(g.value), 1.0/(g.value*math.Ln10))
}

// Sin returns sin(g).
func (g *Gradient) Sin() *Gradient {
	s, c := math.Sincos(g.value)

	return g.compose(s, c)
}

// Cos returns cos(g).
func (g *Gradient) Cos() *Gradient {
	s, c := math.Sincos(g.value)

	return g.compose(c, -s)
}

// Tan returns tan(g).
func (g *Gradient) Tan() *Gradient {
	t := math.Tan(g.value)

	return g.compose(t, 1.0+t*t)
}

// Asin returns asin(g).
func (g *Gradient) Asin() *Gradient {
	return g.compose(math.Asin(g.value), 1.0/math.Sqrt(1.0-g.value*g.value))
}

// Acos returns acos(g).
func (g *Gradient) Acos() *Gradient {
	return g.compose(math.Acos(g.value), -1.0/math.Sqrt(1.0-g.value*g.value))
}

// Atan returns atan(g).
func (g *Gradient) Atan() *Gradient {
	return g.compose(math.Atan(g.value), 1.0/(1.0+g.value*g.value))
}

// Sinh returns sinh(g).
func (g *Gradient) Sinh() *Gradient {
	return g.compose(math.Sinh(g.value), math.Cosh(g.value))
}

// Cosh returns cosh(g).
func (g *Gradient) Cosh() *Gradient {
	return g.compose(math.Cosh(g.value), math.Sinh(g.value))
}

// Tanh returns tanh(g).
func (g *Gradient) Tanh() *Gradient {
	t := math.Tanh(g.value)

	return g.compose(t, 1.0-t*t)
}

// Asinh returns asinh(g).
func (g *Gradient) Asinh() *Gradient {
	return g.compose(math.Asinh(g.value), 1.0/math.Sqrt(g.value*g.value+1.0))
}

// Acosh returns acosh(g).
func (g *Gradient) Acosh() *Gradient {
	return g.compose(math.Acosh(g.value), 1.0/math.Sqrt(g.value*g.value-1.0))
}

// Atanh returns atanh(g).
func (g *Gradient) Atanh() *Gradient {
	return g.compose(math.Atanh(g.value), 1.0/(1.0-g.value*g.value))
}

// Pow returns g^p for a real exponent.
func (g *Gradient) Pow(p float64) *Gradient {
	return g.compose(math.Pow(g.value, p), p*math.Pow(g.value, p-1.0))
}

// PowInt returns g^n for an integer exponent.
func (g *Gradient) PowInt(n int) *Gradient {
	if n == 0 {
		return Constant(1.0)
	}

	valueNm1 := math.Pow(g.value, float64(n-1))

	return g.compose(valueNm1*g.value, float64(n)*valueNm1)
}

// PowG returns g^o for a gradient exponent, as exp(o·ln g).
func (g *Gradient) PowG(o *Gradient) *Gradient {
	return g.Log().Mul(o).Exp()
}

// Sqrt returns the square root of g.
func (g *Gradient) Sqrt() *Gradient {
	s := math.Sqrt(g.value)

	return g.compose(s, 0.5/s)
}

// Cbrt returns the cube root of g.
func (g *Gradient) Cbrt() *Gradient {
	c := math.Cbrt(g.value)

	return g.compose(c, 1.0/(3.0*c*c))
}

// RootN returns the nth root of g.
func (g *Gradient) RootN(n int) *Gradient {
	switch n {
	case 2:
		return g.Sqrt()
	case 3:
		return g.Cbrt()
	default:
		r := math.Pow(g.value, 1.0/float64(n))

		return g.compose(r, 1.0/(float64(n)*math.Pow(r, float64(n-1))))
	}
}

// Atan2 returns atan2(y, x) with derivatives tracked through both
// arguments. The value comes from the scalar math.Atan2, so signed
// zeros and infinities behave exactly as the scalar function.
func Atan2(y, x *Gradient) *Gradient {
	r2 := x.value*x.value + y.value*y.value
	out := fresh(math.Atan2(y.value, x.value), len(x.derivatives)+len(y.derivatives))
	for k, v := range y.derivatives {
		out.derivatives[k] = x.value / r2 * v
	}
	for k, v := range x.derivatives {
		out.derivatives[k] -= y.value / r2 * v
	}

	return out
}

// Hypot returns sqrt(x² + y²) with derivatives tracked through both
// arguments.
func Hypot(x, y *Gradient) *Gradient {
	h := math.Hypot(x.value, y.value)
	out := fresh(h, len(x.derivatives)+len(y.derivatives))
	for k, v := range x.derivatives {
		out.derivatives[k] = x.value / h * v
	}
	for k, v := range y.derivatives {
		out.derivatives[k] += y.value / h * v
	}

	return out
}

// LinearCombination returns Σ a[i]·g[i]. The slices must have equal
// length; a mismatch is a programmer error and panics.
func LinearCombination(a []float64, gs []*Gradient) *Gradient {
	if len(a) != len(gs) {
		panic(fmt.Sprintf("grad: %d coefficients for %d gradients", len(a), len(gs)))
	}
	out := fresh(0, len(gs))
	for i, g := range gs {
		out.value += a[i] * g.value
		for k, v := range g.derivatives {
			out.derivatives[k] += a[i] * v
		}
	}

	return out
}

// Taylor evaluates the first-order expansion of g at the given offsets,
// delta[i] being the displacement of variable index i.
//
// Errors:
//   - ErrUnknownVariable — g depends on an index ≥ len(delta).
func (g *Gradient) Taylor(delta ...float64) (float64, error) {
	value := g.value
	for k, v := range g.derivatives {
		if k >= len(delta) {
			return 0, fmt.Errorf("index %d with %d offsets: %w", k, len(delta), ErrUnknownVariable)
		}
		value += v * delta[k]
	}

	return value, nil
}
