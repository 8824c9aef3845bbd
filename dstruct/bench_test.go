package dstruct_test

import (
	"testing"

	"github.com/katalvlaran/lvldiff/dstruct"
)

// benchmarkMultiply is a helper running Multiply for a given shape.
// It resets the timer after compiler construction and buffer setup.
func benchmarkMultiply(b *testing.B, parameters, order int) {
	c, err := dstruct.GetCompiler(parameters, order)
	if err != nil {
		b.Fatalf("GetCompiler failed: %v", err)
	}
	lhs := make([]float64, c.Size())
	rhs := make([]float64, c.Size())
	result := make([]float64, c.Size())
	for i := range lhs {
		lhs[i] = 1.0 + float64(i)
		rhs[i] = 2.0 - float64(i)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if mulErr := c.Multiply(lhs, 0, rhs, 0, result, 0); mulErr != nil {
			b.Fatalf("Multiply failed: %v", mulErr)
		}
	}
}

// benchmarkElementary is a helper running one unary elementary function.
func benchmarkElementary(b *testing.B, parameters, order int, op func(*dstruct.Compiler, []float64, int, []float64, int) error) {
	c, err := dstruct.GetCompiler(parameters, order)
	if err != nil {
		b.Fatalf("GetCompiler failed: %v", err)
	}
	operand := make([]float64, c.Size())
	operand[0] = 0.7
	if c.Size() > 1 {
		operand[1] = 1.0
	}
	result := make([]float64, c.Size())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if opErr := op(c, operand, 0, result, 0); opErr != nil {
			b.Fatalf("operation failed: %v", opErr)
		}
	}
}

// BenchmarkMultiply_P1O2 benchmarks a tiny univariate shape.
func BenchmarkMultiply_P1O2(b *testing.B) { benchmarkMultiply(b, 1, 2) }

// BenchmarkMultiply_P3O3 benchmarks a mid-size shape (20 coefficients).
func BenchmarkMultiply_P3O3(b *testing.B) { benchmarkMultiply(b, 3, 3) }

// BenchmarkMultiply_P5O5 benchmarks a large shape (252 coefficients).
func BenchmarkMultiply_P5O5(b *testing.B) { benchmarkMultiply(b, 5, 5) }

// BenchmarkExp_P3O3 benchmarks recurrence + composition for exp.
func BenchmarkExp_P3O3(b *testing.B) {
	benchmarkElementary(b, 3, 3, (*dstruct.Compiler).Exp)
}

// BenchmarkAtan_P3O3 benchmarks the heaviest polynomial recurrence path.
func BenchmarkAtan_P3O3(b *testing.B) {
	benchmarkElementary(b, 3, 3, (*dstruct.Compiler).Atan)
}

// BenchmarkGetCompiler_Hit benchmarks the lock-free cache read path.
func BenchmarkGetCompiler_Hit(b *testing.B) {
	if _, err := dstruct.GetCompiler(3, 3); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dstruct.GetCompiler(3, 3); err != nil {
			b.Fatalf("GetCompiler failed: %v", err)
		}
	}
}
