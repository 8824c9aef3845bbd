// Package dstruct: Taylor polynomial evaluation.
package dstruct

import (
	"fmt"
	"math"
)

// maxFactorial is the largest n with n! exactly representable in the
// integer range of float64; derivation orders are expected to stay far
// below it.
const maxFactorial = 20

// factorials holds 0! .. 20!, all exact in float64.
var factorials = func() [maxFactorial + 1]float64 {
	var f [maxFactorial + 1]float64
	f[0] = 1
	for i := 1; i <= maxFactorial; i++ {
		f[i] = f[i-1] * float64(i)
	}

	return f
}()

// factorial returns n! or ErrOrderTooLarge past maxFactorial.
func factorial(n int) (float64, error) {
	if n < 0 || n > maxFactorial {
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrOrderTooLarge)
	}

	return factorials[n], nil
}

// Taylor evaluates the Taylor expansion of a derivative structure at
// offsets delta away from its evaluation point:
//
//	Σ_i ds[i] · Π_k delta[k]^orders_i[k] / orders_i[k]!
//
// iterated over every coefficient index through the decode table.
//
// Errors:
//   - ErrDimensionMismatch — len(delta) != Parameters().
//   - ErrShortArray        — ds too short past dsOffset.
//   - ErrOrderTooLarge     — a derivation order exceeds the largest
//     exactly representable factorial (orders are expected to stay
//     small; hitting this means the compiler shape itself is extreme).
func (c *Compiler) Taylor(ds []float64, dsOffset int, delta ...float64) (float64, error) {
	if len(delta) != c.parameters {
		return 0, dsErrorf(opTaylor, ErrDimensionMismatch)
	}
	if err := c.checkArray(ds, dsOffset); err != nil {
		return 0, dsErrorf(opTaylor, err)
	}

	var value float64
	for i := c.Size() - 1; i >= 0; i-- {
		orders := c.derivativesIndirection[i]
		term := ds[dsOffset+i]
		for k, o := range orders {
			if o > 0 {
				fact, err := factorial(o)
				if err != nil {
					return 0, dsErrorf(opTaylor, err)
				}
				term *= math.Pow(delta[k], float64(o)) / fact
			}
		}
		value += term
	}

	return value, nil
}
