package linsys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/linsys"
)

func TestParseEquationsUnique(t *testing.T) {
	sys, err := linsys.ParseEquations([]string{
		"2*x + 3*y + z = 5",
		"x - y + 2*z = 4",
		"z = 1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, sys.Variables())

	sol, err := sys.Solve()
	require.NoError(t, err)
	require.Equal(t, linsys.Unique, sol.Kind)
	assert.True(t, sol.Unique.AllClose(mustVec(t, 2, 0, 1), eps))
}

func TestParseEquationsShapes(t *testing.T) {
	sys, err := linsys.ParseEquations([]string{"2*x + y = 3"})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, sys.Variables())
	assert.True(t, sys.A().Equal(mustMat(t, [][]float64{{2, 1}})))
	assert.True(t, sys.B().Equal(mustVec(t, 3)))
}

func TestParseEquationsImplicitCoefficients(t *testing.T) {
	// "-x" means −1, a bare variable means +1, '*' is optional.
	sys, err := linsys.ParseEquations([]string{"-x + 3.5y - z = 0"})
	require.NoError(t, err)
	assert.True(t, sys.A().Equal(mustMat(t, [][]float64{{-1, 3.5, -1}})))
}

func TestParseEquationsRightSideVariables(t *testing.T) {
	// Variables on the right are moved left: x = y + 1 ⇒ x − y = 1.
	sys, err := linsys.ParseEquations([]string{"x = y + 1"})
	require.NoError(t, err)
	assert.True(t, sys.A().Equal(mustMat(t, [][]float64{{1, -1}})))
	assert.True(t, sys.B().Equal(mustVec(t, 1)))
}

func TestParseEquationsConstantFolding(t *testing.T) {
	// Constants on both sides accumulate: 2x + 1 − 3 = 4 ⇒ 2x = 6.
	sys, err := linsys.ParseEquations([]string{"2*x + 1 - 3 = 4"})
	require.NoError(t, err)
	assert.True(t, sys.B().Equal(mustVec(t, 6)))
}

func TestParseEquationsErrors(t *testing.T) {
	_, err := linsys.ParseEquations([]string{"2*x + 3"})
	assert.ErrorIs(t, err, linsys.ErrMissingEquals)

	_, err = linsys.ParseEquations([]string{"2*^x = 3"})
	assert.ErrorIs(t, err, linsys.ErrBadTerm)

	_, err = linsys.ParseEquations([]string{"2 = 2"})
	assert.ErrorIs(t, err, linsys.ErrNoVariables)

	_, err = linsys.ParseEquations(nil)
	assert.ErrorIs(t, err, linsys.ErrNoVariables)
}

func TestVariablesNilForDirectConstruction(t *testing.T) {
	sys := linsys.New(mustMat(t, [][]float64{{1}}), mustVec(t, 1))
	assert.Nil(t, sys.Variables())
}
