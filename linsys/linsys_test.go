package linsys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/linsys"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

const eps = 1e-10

func mustMat(t *testing.T, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromFloats(rows)
	require.NoError(t, err)

	return m
}

func mustVec(t *testing.T, vals ...float64) vector.Vector {
	t.Helper()
	v, err := vector.FromFloats(vals)
	require.NoError(t, err)

	return v
}

func TestSolveUnique(t *testing.T) {
	eye, err := matrix.Eye(3)
	require.NoError(t, err)

	sol, err := linsys.New(eye, mustVec(t, 1, 2, 3)).Solve()
	require.NoError(t, err)
	assert.Equal(t, linsys.Unique, sol.Kind)
	assert.True(t, sol.Unique.AllClose(mustVec(t, 1, 2, 3), eps))
	assert.Empty(t, sol.Directions)

	// A non-trivial full-rank system, checked by substitution.
	a := mustMat(t, [][]float64{{2, 1}, {1, 3}})
	b := mustVec(t, 5, 10)
	sol, err = linsys.New(a, b).Solve()
	require.NoError(t, err)
	require.Equal(t, linsys.Unique, sol.Kind)
	ax, err := a.MulVector(sol.Unique)
	require.NoError(t, err)
	assert.True(t, ax.AllClose(b, eps))
}

func TestSolveNoSolution(t *testing.T) {
	a := mustMat(t, [][]float64{{1, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	b := mustVec(t, 1, 2, 0)

	sol, err := linsys.New(a, b).Solve()
	require.NoError(t, err, "inconsistency is a classification, not an error")
	assert.Equal(t, linsys.NoSolution, sol.Kind)
	assert.Empty(t, sol.Directions)
}

func TestSolveInfinite(t *testing.T) {
	a := mustMat(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}})
	b := mustVec(t, 0, 0, 0)

	sol, err := linsys.New(a, b).Solve()
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, sol.Kind)
	require.Len(t, sol.Directions, 1)
	assert.True(t, sol.Directions[0].Equal(mustVec(t, 0, 0, 1)))
}

// TestSolveInfiniteIntegerRescale pins the rational rescale: the raw
// direction (−2/3, −1/3, 1) must come back as (−2, −1, 3).
func TestSolveInfiniteIntegerRescale(t *testing.T) {
	a := mustMat(t, [][]float64{
		{1, 0, 2.0 / 3.0},
		{0, 1, 1.0 / 3.0},
	})
	b := mustVec(t, 1, 1)

	sol, err := linsys.New(a, b).Solve()
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, sol.Kind)
	require.Len(t, sol.Directions, 1)
	assert.True(t, sol.Directions[0].Equal(mustVec(t, -2, -1, 3)))
}

// TestSolveDirectionsSpanNullSpace checks A·d = 0 for every direction
// of a homogeneous underdetermined system.
func TestSolveDirectionsSpanNullSpace(t *testing.T) {
	a := mustMat(t, [][]float64{{1, 2, 3, 4}, {2, 4, 6, 8}})
	b := mustVec(t, 0, 0)

	sol, err := linsys.New(a, b).Solve()
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, sol.Kind)
	require.Len(t, sol.Directions, 3, "one direction per free column")

	for _, d := range sol.Directions {
		ad, err := a.MulVector(d)
		require.NoError(t, err)
		assert.True(t, ad.AllClose(mustVec(t, 0, 0), eps), "A·%s != 0", d)
	}
}

func TestSolveShapeMismatch(t *testing.T) {
	a := mustMat(t, [][]float64{{1, 2}, {3, 4}})

	_, err := linsys.New(a, mustVec(t, 1, 2, 3)).Solve()
	assert.ErrorIs(t, err, linsys.ErrDimensionMismatch)
}

func TestParticularSolution(t *testing.T) {
	// Free variable z stays zero.
	a := mustMat(t, [][]float64{{1, 0, 2}, {0, 1, 1}})
	b := mustVec(t, 4, 3)

	x, err := linsys.New(a, b).ParticularSolution()
	require.NoError(t, err)
	assert.True(t, x.AllClose(mustVec(t, 4, 3, 0), eps))
	ax, err := a.MulVector(x)
	require.NoError(t, err)
	assert.True(t, ax.AllClose(b, eps))

	// Unique systems return their only solution.
	eye, err := matrix.Eye(2)
	require.NoError(t, err)
	x, err = linsys.New(eye, mustVec(t, 7, 9)).ParticularSolution()
	require.NoError(t, err)
	assert.True(t, x.AllClose(mustVec(t, 7, 9), eps))

	// Inconsistent systems are an error here, unlike in Solve.
	bad := linsys.New(mustMat(t, [][]float64{{1, 0}, {1, 0}}), mustVec(t, 1, 2))
	_, err = bad.ParticularSolution()
	assert.ErrorIs(t, err, linsys.ErrInconsistent)
}

func TestAppend(t *testing.T) {
	top := linsys.New(mustMat(t, [][]float64{{1, 1}}), mustVec(t, 3))
	bottom := linsys.New(mustMat(t, [][]float64{{1, -1}}), mustVec(t, 1))

	combined, err := top.Append(bottom)
	require.NoError(t, err)

	sol, err := combined.Solve()
	require.NoError(t, err)
	require.Equal(t, linsys.Unique, sol.Kind)
	assert.True(t, sol.Unique.AllClose(mustVec(t, 2, 1), eps))

	_, err = top.Append(linsys.New(mustMat(t, [][]float64{{1, 2, 3}}), mustVec(t, 1)))
	assert.ErrorIs(t, err, linsys.ErrDimensionMismatch)
}

// TestEpsilonGovernsClassification checks that the configured
// tolerance drives the rank test itself, not just the pivot scan: an
// epsilon above every entry of the reduced form must demote a
// full-rank system to the underdetermined case, with one unit
// direction per variable.
func TestEpsilonGovernsClassification(t *testing.T) {
	eye, err := matrix.Eye(2)
	require.NoError(t, err)
	sys := linsys.New(eye, mustVec(t, 1, 2))

	sol, err := sys.Solve()
	require.NoError(t, err)
	assert.Equal(t, linsys.Unique, sol.Kind)

	// Every reduced entry is 1 or 2, so eps = 10 reads all of them as
	// zero: rank(A) = rank([A|b]) = 0 and both columns are free.
	sol, err = sys.Solve(linsys.WithEpsilon(10))
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, sol.Kind)
	require.Len(t, sol.Directions, 2)
	assert.True(t, sol.Directions[0].Equal(mustVec(t, 1, 0)))
	assert.True(t, sol.Directions[1].Equal(mustVec(t, 0, 1)))

	// ParticularSolution classifies with the same tolerance: all-free
	// variables zero out instead of tripping the inconsistency check.
	x, err := sys.ParticularSolution(linsys.WithEpsilon(10))
	require.NoError(t, err)
	assert.True(t, x.Equal(mustVec(t, 0, 0)))
}

func TestOptionValidation(t *testing.T) {
	assert.Panics(t, func() { linsys.WithEpsilon(-1) })
	assert.Panics(t, func() { linsys.WithMaxDenominator(0) })
	assert.NotPanics(t, func() { linsys.WithEpsilon(1e-8) })

	// A tiny denominator bound coarsens the rescale but stays usable.
	a := mustMat(t, [][]float64{{1, 0.5}})
	sol, err := linsys.New(a, mustVec(t, 0)).Solve(linsys.WithMaxDenominator(2))
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, sol.Kind)
	require.Len(t, sol.Directions, 1)
	assert.True(t, sol.Directions[0].Equal(mustVec(t, -1, 2)))
}
