// Package dstruct_test verifies thread-safety of the compiler cache
// under concurrent construction requests.
package dstruct_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvldiff/dstruct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCompiler_ConcurrentStorm launches many goroutines requesting
// overlapping compiler shapes; all must succeed and agree on sizes.
// Duplicate construction is tolerated by design, data races are not —
// run with -race.
func TestGetCompiler_ConcurrentStorm(t *testing.T) {
	const goroutines = 64
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			p := id % 5
			o := (id / 5) % 5
			c, err := dstruct.GetCompiler(p, o)
			require.NoError(t, err)
			require.Equal(t, binomialRef(p+o, o), c.Size())

			// exercise the tables, not just the metadata
			x := make([]float64, c.Size())
			x[0] = 1.5
			result := make([]float64, c.Size())
			require.NoError(t, c.Exp(x, 0, result, 0))
		}(g)
	}
	wg.Wait()
}

// TestGetCompiler_CacheReturnsSameInstance checks that once published, a
// compiler shape always resolves to the same immutable instance.
func TestGetCompiler_CacheReturnsSameInstance(t *testing.T) {
	first, err := dstruct.GetCompiler(3, 3)
	require.NoError(t, err)
	second, err := dstruct.GetCompiler(3, 3)
	require.NoError(t, err)
	assert.Same(t, first, second, "published compiler must be reused")

	// requesting a bigger shape must not invalidate the smaller one
	_, err = dstruct.GetCompiler(5, 5)
	require.NoError(t, err)
	third, err := dstruct.GetCompiler(3, 3)
	require.NoError(t, err)
	assert.Same(t, first, third, "cache growth must preserve existing compilers")
}
