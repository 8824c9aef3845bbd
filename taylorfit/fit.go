package taylorfit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldiff/dstruct"
)

// Sentinel errors. Match them with errors.Is; the wrapped message names
// the offending operation and the actual values involved.
var (
	// ErrBadDegree - requested polynomial degree is negative.
	ErrBadDegree = errors.New("taylorfit: degree must be non-negative")
	// ErrTooFewSamples - fewer samples than coefficients to determine.
	ErrTooFewSamples = errors.New("taylorfit: need at least degree+1 samples")
	// ErrDimensionMismatch - abscissa and ordinate slices differ in length.
	ErrDimensionMismatch = errors.New("taylorfit: xs and ys lengths differ")
	// ErrSingularFit - the design matrix is (numerically) rank deficient,
	// typically because sample abscissae repeat.
	ErrSingularFit = errors.New("taylorfit: singular design matrix")
)

// Operation names used in wrapped errors.
const (
	opFit     = "Fit"
	opPredict = "Predict"
	opRMSE    = "RMSE"
)

// Fit estimates the derivatives of an unknown univariate function at
// the given center from samples (xs[i], ys[i]), by least-squares
// fitting a polynomial of the given degree in (x − center).
//
// The returned slice has length degree+1 and is laid out as a
// 1-parameter derivative structure: ds[k] is the estimated k-th
// derivative at center (the polynomial coefficient times k!), ds[0]
// the estimated value.
//
// Errors:
//   - ErrBadDegree         — degree < 0
//   - ErrDimensionMismatch — len(xs) != len(ys)
//   - ErrTooFewSamples     — len(xs) < degree+1
//   - ErrSingularFit       — the normal equations have no unique solution
func Fit(xs, ys []float64, center float64, degree int) ([]float64, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%s: degree %d: %w", opFit, degree, ErrBadDegree)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%s: %d abscissae, %d ordinates: %w",
			opFit, len(xs), len(ys), ErrDimensionMismatch)
	}
	cols := degree + 1
	if len(xs) < cols {
		return nil, fmt.Errorf("%s: %d samples for %d coefficients: %w",
			opFit, len(xs), cols, ErrTooFewSamples)
	}

	// Vandermonde design matrix in powers of (x − center).
	a := mat.NewDense(len(xs), cols, nil)
	for i, x := range xs {
		term := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, term)
			term *= x - center
		}
	}
	b := mat.NewVecDense(len(ys), append([]float64(nil), ys...))

	var qr mat.QR
	qr.Factorize(a)

	var coeffs mat.VecDense
	if err := qr.SolveVecTo(&coeffs, false, b); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opFit, err, ErrSingularFit)
	}

	// cₖ → cₖ·k! turns polynomial coefficients into derivatives.
	ds := make([]float64, cols)
	kFactorial := 1.0
	for k := 0; k < cols; k++ {
		if k > 1 {
			kFactorial *= float64(k)
		}
		ds[k] = coeffs.AtVec(k) * kFactorial
	}

	return ds, nil
}

// Predict evaluates the fitted model at x. ds must be a derivative
// array as returned by Fit about the same center.
//
// Errors:
//   - ErrBadDegree — ds is empty
//   - dstruct.ErrOrderTooLarge — len(ds)−1 exceeds the exact-factorial range
func Predict(ds []float64, center, x float64) (float64, error) {
	if len(ds) == 0 {
		return 0, fmt.Errorf("%s: empty derivative array: %w", opPredict, ErrBadDegree)
	}

	c, err := dstruct.GetCompiler(1, len(ds)-1)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	value, err := c.Taylor(ds, 0, x-center)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	return value, nil
}

// RMSE returns the root-mean-square residual of the fitted model over
// the given samples. It accepts the same arguments as Fit plus the
// fitted array, so callers can judge how much of the signal the model
// explains.
func RMSE(xs, ys, ds []float64, center float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("%s: %d abscissae, %d ordinates: %w",
			opRMSE, len(xs), len(ys), ErrDimensionMismatch)
	}
	if len(xs) == 0 {
		return 0, fmt.Errorf("%s: no samples: %w", opRMSE, ErrTooFewSamples)
	}

	var sum float64
	for i, x := range xs {
		predicted, err := Predict(ds, center, x)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", opRMSE, err)
		}
		r := predicted - ys[i]
		sum += r * r
	}

	return math.Sqrt(sum / float64(len(xs))), nil
}
