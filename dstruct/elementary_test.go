// Package dstruct_test verifies the elementary function recurrences
// against closed-form derivatives and the documented edge patterns.
package dstruct_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvldiff/dstruct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExp_AllSlotsEqualE reproduces the reference scenario:
// parameters=1, order=3, x=1 — every slot of exp(x) equals e.
func TestExp_AllSlotsEqualE(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 3)
	require.NoError(t, err)

	x := variable(t, c, 0, 1.0)
	result := make([]float64, c.Size())
	require.NoError(t, c.Exp(x, 0, result, 0))

	for i := 0; i < c.Size(); i++ {
		assert.InDelta(t, math.E, result[i], 1e-15, "slot %d", i)
	}
}

// TestPowInt_CubeScenario reproduces the reference scenario:
// parameters=1, order=2, x=2 — pow(x, 3) = [8, 12, 12] (second
// derivative stored un-normalized, n(n-1)x^(n-2)).
func TestPowInt_CubeScenario(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 2)
	require.NoError(t, err)

	x := variable(t, c, 0, 2.0)
	result := make([]float64, c.Size())
	require.NoError(t, c.PowInt(x, 0, 3, result, 0))

	assert.InDelta(t, 8.0, result[0], 1e-13)
	assert.InDelta(t, 12.0, result[1], 1e-13, "3x²")
	assert.InDelta(t, 12.0, result[2], 1e-13, "6x")
}

// TestSin_TrigCycle reproduces the reference scenario: parameters=1,
// x=0.3, orders 0..4 of sin cycle through sin, cos, -sin, -cos, sin.
func TestSin_TrigCycle(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 4)
	require.NoError(t, err)

	const x0 = 0.3
	x := variable(t, c, 0, x0)
	result := make([]float64, c.Size())
	require.NoError(t, c.Sin(x, 0, result, 0))

	expected := []float64{math.Sin(x0), math.Cos(x0), -math.Sin(x0), -math.Cos(x0), math.Sin(x0)}
	for i, want := range expected {
		assert.InDelta(t, want, result[i], 1e-12, "order %d", i)
	}
}

// TestCos_MatchesShiftedSin checks cos(x) slot-wise against the sin
// cycle shifted by one derivative.
func TestCos_MatchesShiftedSin(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 4)
	require.NoError(t, err)

	const x0 = 1.1
	x := variable(t, c, 0, x0)
	result := make([]float64, c.Size())
	require.NoError(t, c.Cos(x, 0, result, 0))

	expected := []float64{math.Cos(x0), -math.Sin(x0), -math.Cos(x0), math.Sin(x0), math.Cos(x0)}
	for i, want := range expected {
		assert.InDelta(t, want, result[i], 1e-12, "order %d", i)
	}
}

// TestSinCos_PythagoreanIdentity checks sin²+cos² == 1 as full
// derivative structures (all derivative slots of the sum vanish).
func TestSinCos_PythagoreanIdentity(t *testing.T) {
	c, err := dstruct.GetCompiler(2, 3)
	require.NoError(t, err)

	x := variable(t, c, 0, 0.7)
	s := make([]float64, c.Size())
	cs := make([]float64, c.Size())
	s2 := make([]float64, c.Size())
	c2 := make([]float64, c.Size())
	sum := make([]float64, c.Size())
	require.NoError(t, c.Sin(x, 0, s, 0))
	require.NoError(t, c.Cos(x, 0, cs, 0))
	require.NoError(t, c.Multiply(s, 0, s, 0, s2, 0))
	require.NoError(t, c.Multiply(cs, 0, cs, 0, c2, 0))
	require.NoError(t, c.Add(s2, 0, c2, 0, sum, 0))

	assert.InDelta(t, 1.0, sum[0], 1e-14)
	for i := 1; i < c.Size(); i++ {
		assert.InDelta(t, 0.0, sum[i], 1e-13, "slot %d", i)
	}
}

// TestTan_MatchesSinOverCos cross-checks the auxiliary polynomial
// recurrence against an independent computation path.
func TestTan_MatchesSinOverCos(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 4)
	require.NoError(t, err)

	x := variable(t, c, 0, 0.4)
	tan := make([]float64, c.Size())
	s := make([]float64, c.Size())
	cs := make([]float64, c.Size())
	quotient := make([]float64, c.Size())
	require.NoError(t, c.Tan(x, 0, tan, 0))
	require.NoError(t, c.Sin(x, 0, s, 0))
	require.NoError(t, c.Cos(x, 0, cs, 0))
	require.NoError(t, c.Divide(s, 0, cs, 0, quotient, 0))

	for i := range tan {
		assert.InDelta(t, quotient[i], tan[i], 1e-11, "slot %d", i)
	}
}

// TestLogExp_RoundTrip checks exp(log(x)) == x through full structures.
func TestLogExp_RoundTrip(t *testing.T) {
	c, err := dstruct.GetCompiler(2, 3)
	require.NoError(t, err)

	x := variable(t, c, 0, 2.5)
	logX := make([]float64, c.Size())
	back := make([]float64, c.Size())
	require.NoError(t, c.Log(x, 0, logX, 0))
	require.NoError(t, c.Exp(logX, 0, back, 0))

	for i := range back {
		assert.InDelta(t, x[i], back[i], 1e-13, "slot %d", i)
	}
}

// TestLog_NonPositivePropagatesAsData checks domain violations come back
// as NaN/-Inf, never as an error.
func TestLog_NonPositivePropagatesAsData(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 2)
	require.NoError(t, err)

	x := variable(t, c, 0, -1.0)
	result := make([]float64, c.Size())
	require.NoError(t, c.Log(x, 0, result, 0), "log of a negative is data, not an error")
	assert.True(t, math.IsNaN(result[0]))
}

// TestLogVariants checks Log1p and Log10 values and first derivatives.
func TestLogVariants(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 2)
	require.NoError(t, err)

	const x0 = 0.8
	x := variable(t, c, 0, x0)
	result := make([]float64, c.Size())

	require.NoError(t, c.Log1p(x, 0, result, 0))
	assert.InDelta(t, math.Log1p(x0), result[0], 1e-15)
	assert.InDelta(t, 1/(1+x0), result[1], 1e-14)
	assert.InDelta(t, -1/((1+x0)*(1+x0)), result[2], 1e-14)

	require.NoError(t, c.Log10(x, 0, result, 0))
	assert.InDelta(t, math.Log10(x0), result[0], 1e-15)
	assert.InDelta(t, 1/(x0*math.Ln10), result[1], 1e-14)

	require.NoError(t, c.Expm1(x, 0, result, 0))
	assert.InDelta(t, math.Expm1(x0), result[0], 1e-15)
	assert.InDelta(t, math.Exp(x0), result[1], 1e-14)
}

// TestInverseTrig_RoundTrips checks f(f⁻¹(x)) == x structure-wise for
// the inverse trig and hyperbolic pairs.
func TestInverseTrig_RoundTrips(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 3)
	require.NoError(t, err)

	type pair struct {
		name    string
		forward func([]float64, int, []float64, int) error
		inverse func([]float64, int, []float64, int) error
		value   float64
	}
	pairs := []pair{
		{"sin/asin", c.Sin, c.Asin, 0.4},
		{"cos/acos", c.Cos, c.Acos, 0.4},
		{"tan/atan", c.Tan, c.Atan, 0.4},
		{"sinh/asinh", c.Sinh, c.Asinh, 0.6},
		{"cosh/acosh", c.Cosh, c.Acosh, 0.6},
		{"tanh/atanh", c.Tanh, c.Atanh, 0.6},
	}
	for _, p := range pairs {
		x := variable(t, c, 0, p.value)
		mid := make([]float64, c.Size())
		back := make([]float64, c.Size())
		require.NoError(t, p.forward(x, 0, mid, 0), p.name)
		require.NoError(t, p.inverse(mid, 0, back, 0), p.name)
		for i := range back {
			assert.InDelta(t, x[i], back[i], 1e-10, "%s slot %d", p.name, i)
		}
	}
}

// TestHyperbolic_Identity checks cosh² - sinh² == 1 structure-wise.
func TestHyperbolic_Identity(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 3)
	require.NoError(t, err)

	x := variable(t, c, 0, 0.9)
	sh := make([]float64, c.Size())
	ch := make([]float64, c.Size())
	sh2 := make([]float64, c.Size())
	ch2 := make([]float64, c.Size())
	diff := make([]float64, c.Size())
	require.NoError(t, c.Sinh(x, 0, sh, 0))
	require.NoError(t, c.Cosh(x, 0, ch, 0))
	require.NoError(t, c.Multiply(sh, 0, sh, 0, sh2, 0))
	require.NoError(t, c.Multiply(ch, 0, ch, 0, ch2, 0))
	require.NoError(t, c.Subtract(ch2, 0, sh2, 0, diff, 0))

	assert.InDelta(t, 1.0, diff[0], 1e-13)
	for i := 1; i < c.Size(); i++ {
		assert.InDelta(t, 0.0, diff[i], 1e-12, "slot %d", i)
	}
}

// TestPow_FloatMatchesPowInt cross-checks the real-exponent and
// integer-exponent paths.
func TestPow_FloatMatchesPowInt(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 3)
	require.NoError(t, err)

	x := variable(t, c, 0, 1.7)
	viaFloat := make([]float64, c.Size())
	viaInt := make([]float64, c.Size())
	require.NoError(t, c.Pow(x, 0, 5.0, viaFloat, 0))
	require.NoError(t, c.PowInt(x, 0, 5, viaInt, 0))
	for i := range viaFloat {
		assert.InDelta(t, viaInt[i], viaFloat[i], 1e-10, "slot %d", i)
	}
}

// TestPow_ZeroExponent checks x^0 is the constant 1 for any operand.
func TestPow_ZeroExponent(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 2)
	require.NoError(t, err)

	x := variable(t, c, 0, -3.2)
	result := make([]float64, c.Size())
	require.NoError(t, c.Pow(x, 0, 0.0, result, 0))
	assert.Equal(t, 1.0, result[0])
	for i := 1; i < c.Size(); i++ {
		assert.Equal(t, 0.0, result[i], "slot %d", i)
	}
}

// TestPowScalar_ZeroBaseEdgePatterns pins the three documented a == 0
// regimes: alternating infinities at x == 0, all-NaN for x < 0, and the
// zero constant for x > 0. These exact patterns are contractual.
func TestPowScalar_ZeroBaseEdgePatterns(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 3)
	require.NoError(t, err)
	result := make([]float64, c.Size())

	// x value == 0: value 1, derivatives alternate -Inf, +Inf, -Inf
	x := variable(t, c, 0, 0.0)
	require.NoError(t, c.PowScalar(0.0, x, 0, result, 0))
	assert.Equal(t, 1.0, result[0])
	assert.True(t, math.IsInf(result[1], -1), "first derivative -Inf")
	assert.True(t, math.IsInf(result[2], +1), "second derivative +Inf")
	assert.True(t, math.IsInf(result[3], -1), "third derivative -Inf")

	// x value < 0: all NaN
	x = variable(t, c, 0, -1.5)
	require.NoError(t, c.PowScalar(0.0, x, 0, result, 0))
	for i := range result {
		assert.True(t, math.IsNaN(result[i]), "slot %d must be NaN", i)
	}

	// x value > 0: the all-zero constant 0
	x = variable(t, c, 0, 1.5)
	require.NoError(t, c.PowScalar(0.0, x, 0, result, 0))
	for i := range result {
		assert.Equal(t, 0.0, result[i], "slot %d must be 0", i)
	}
}

// TestPowScalar_PositiveBase checks a^x derivatives carry ln(a) factors.
func TestPowScalar_PositiveBase(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 2)
	require.NoError(t, err)

	x := variable(t, c, 0, 1.2)
	result := make([]float64, c.Size())
	require.NoError(t, c.PowScalar(3.0, x, 0, result, 0))

	v := math.Pow(3.0, 1.2)
	ln3 := math.Log(3.0)
	assert.InDelta(t, v, result[0], 1e-13)
	assert.InDelta(t, ln3*v, result[1], 1e-13)
	assert.InDelta(t, ln3*ln3*v, result[2], 1e-12)
}

// TestPowDS_MatchesExpLog checks x^y == exp(y·log x) numerically.
func TestPowDS_MatchesExpLog(t *testing.T) {
	c, err := dstruct.GetCompiler(2, 2)
	require.NoError(t, err)

	x := variable(t, c, 0, 2.0)
	y := variable(t, c, 1, 1.5)
	result := make([]float64, c.Size())
	require.NoError(t, c.PowDS(x, 0, y, 0, result, 0))

	assert.InDelta(t, math.Pow(2.0, 1.5), result[0], 1e-13)
	// ∂(x^y)/∂x = y·x^(y-1), ∂(x^y)/∂y = ln(x)·x^y
	dx, idxErr := c.PartialDerivativeIndex(1, 0)
	require.NoError(t, idxErr)
	dy, idxErr := c.PartialDerivativeIndex(0, 1)
	require.NoError(t, idxErr)
	assert.InDelta(t, 1.5*math.Pow(2.0, 0.5), result[dx], 1e-13)
	assert.InDelta(t, math.Log(2.0)*math.Pow(2.0, 1.5), result[dy], 1e-13)
}

// TestRootN_SquareAndCube checks RootN against Pow with fractional
// exponents and the exact sqrt value path.
func TestRootN_SquareAndCube(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 2)
	require.NoError(t, err)

	x := variable(t, c, 0, 4.0)
	result := make([]float64, c.Size())
	require.NoError(t, c.RootN(x, 0, 2, result, 0))
	assert.Equal(t, 2.0, result[0], "sqrt path uses math.Sqrt")
	assert.InDelta(t, 0.25, result[1], 1e-14, "1/(2·sqrt(4))")
	assert.InDelta(t, -1.0/32.0, result[2], 1e-14)

	x = variable(t, c, 0, 8.0)
	require.NoError(t, c.RootN(x, 0, 3, result, 0))
	assert.Equal(t, 2.0, result[0], "cbrt path uses math.Cbrt")
	assert.InDelta(t, 1.0/12.0, result[1], 1e-14, "1/(3·8^(2/3))")
}

// TestAtan2_Quadrants checks value and gradient of atan2 across all four
// quadrants against the scalar atan2 and its analytic partials.
func TestAtan2_Quadrants(t *testing.T) {
	c, err := dstruct.GetCompiler(2, 1)
	require.NoError(t, err)

	points := [][2]float64{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {3, 0.5}, {-3, -0.5}}
	for _, point := range points {
		yv, xv := point[0], point[1]
		y := variable(t, c, 0, yv)
		x := variable(t, c, 1, xv)
		result := make([]float64, c.Size())
		require.NoError(t, c.Atan2(y, 0, x, 0, result, 0))

		r2 := xv*xv + yv*yv
		dy, idxErr := c.PartialDerivativeIndex(1, 0)
		require.NoError(t, idxErr)
		dx, idxErr := c.PartialDerivativeIndex(0, 1)
		require.NoError(t, idxErr)
		assert.InDelta(t, math.Atan2(yv, xv), result[0], 1e-15, "value at (%v, %v)", yv, xv)
		assert.InDelta(t, xv/r2, result[dy], 1e-13, "∂/∂y at (%v, %v)", yv, xv)
		assert.InDelta(t, -yv/r2, result[dx], 1e-13, "∂/∂x at (%v, %v)", yv, xv)
	}
}

// TestAtan2_BranchCutValue pins the special-case overwrite: for y = +0,
// x = -1 the value slot equals π exactly, whatever the generic branch
// alone would produce.
func TestAtan2_BranchCutValue(t *testing.T) {
	c, err := dstruct.GetCompiler(1, 1)
	require.NoError(t, err)

	y := constant(c, 0.0)
	x := variable(t, c, 0, -1.0)
	result := make([]float64, c.Size())
	require.NoError(t, c.Atan2(y, 0, x, 0, result, 0))
	assert.Equal(t, math.Pi, result[0], "exact π from the scalar atan2 overwrite")
}
