package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

func TestRowEchelon(t *testing.T) {
	m := mustMat(t, [][]float64{{2, 4}, {1, 3}})
	ref := m.RowEchelon()

	assert.True(t, ref.Equal(mustMat(t, [][]float64{{1, 2}, {0, 1}})))
	assert.True(t, ref.IsUpperTriangular())

	// The receiver is never mutated, and the memo is stable.
	assert.True(t, m.Equal(mustMat(t, [][]float64{{2, 4}, {1, 3}})))
	assert.Same(t, ref, m.RowEchelon())
}

func TestReducedRowEchelon(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{
			name: "full rank square",
			in:   [][]float64{{2, 1}, {1, 1}},
			want: [][]float64{{1, 0}, {0, 1}},
		},
		{
			name: "rank deficient square",
			in:   [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			want: [][]float64{{1, 0, -1}, {0, 1, 2}, {0, 0, 0}},
		},
		{
			name: "wide with free column",
			in:   [][]float64{{1, 2, 3}, {2, 4, 7}},
			want: [][]float64{{1, 2, 0}, {0, 0, 1}},
		},
		{
			name: "zero row stays at the bottom",
			in:   [][]float64{{0, 0}, {0, 5}},
			want: [][]float64{{0, 1}, {0, 0}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMat(t, tc.in)
			rref := m.ReducedRowEchelon()
			assert.True(t, rref.AllClose(mustMat(t, tc.want), eps), "got:\n%s", rref)

			// Idempotence: reducing a reduced form changes nothing.
			assert.True(t, rref.ReducedRowEchelon().AllClose(rref, eps))
		})
	}
}

func TestReducedRowEchelonMemo(t *testing.T) {
	m := mustMat(t, [][]float64{{1, 2}, {3, 4}})

	first := m.ReducedRowEchelon()
	assert.Same(t, first, m.ReducedRowEchelon())
	assert.True(t, m.Equal(mustMat(t, [][]float64{{1, 2}, {3, 4}})))
}

// TestReducedRowEchelonBase pins the transform contract B·A == RREF(A).
func TestReducedRowEchelonBase(t *testing.T) {
	for _, rows := range [][][]float64{
		{{2, 1}, {1, 1}},
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		{{1, 2, 3}, {2, 4, 7}},
	} {
		a := mustMat(t, rows)
		rref, base := a.ReducedRowEchelonBase()

		prod, err := base.Mul(a)
		require.NoError(t, err)
		assert.True(t, prod.AllClose(rref, eps))
		assert.True(t, rref.AllClose(a.ReducedRowEchelon(), eps))
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want int
	}{
		{"full rank", [][]float64{{2, 1}, {1, 1}}, 2},
		{"dependent rows", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 2},
		{"all zero", [][]float64{{0, 0}, {0, 0}}, 0},
		{"single row", [][]float64{{0, 0, 5}}, 1},
		{"wide", [][]float64{{1, 2, 3}, {2, 4, 6}}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustMat(t, tc.in).Rank())
		})
	}
}

func TestDet(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want float64
	}{
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{4, 7, 2}, {3, 6, 1}, {2, 5, 9}}, 27},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"identity", [][]float64{{1, 0}, {0, 1}}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			det, err := mustMat(t, tc.in).Det()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, det.Float(), eps)
		})
	}

	_, err := mustMat(t, [][]float64{{1, 2, 3}}).Det()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInv(t *testing.T) {
	a := mustMat(t, [][]float64{{2, 1}, {1, 1}})

	inv, err := a.Inv()
	require.NoError(t, err)
	assert.True(t, inv.AllClose(mustMat(t, [][]float64{{1, -1}, {-1, 2}}), eps))

	// A·A⁻¹ ≈ I on both sides.
	eye, err := matrix.Eye(2)
	require.NoError(t, err)
	prod, err := a.Mul(inv)
	require.NoError(t, err)
	assert.True(t, prod.AllClose(eye, eps))
	prod, err = inv.Mul(a)
	require.NoError(t, err)
	assert.True(t, prod.AllClose(eye, eps))

	_, err = mustMat(t, [][]float64{{1, 2}, {2, 4}}).Inv()
	assert.ErrorIs(t, err, matrix.ErrNotInvertible)

	_, err = mustMat(t, [][]float64{{1, 2, 3}}).Inv()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestOrthogonalBasis checks that the returned columns diagonalize
// the form: DotForm of distinct basis vectors against the matrix
// vanishes.
func TestOrthogonalBasis(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
	}{
		{"positive definite", [][]float64{{1, 2}, {2, 5}}},
		{"zero diagonal", [][]float64{{0, 1}, {1, 0}}},
		{"three variables", [][]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMat(t, tc.in)
			basis, err := m.OrthogonalBasis()
			require.NoError(t, err)
			require.Len(t, basis, m.Rows())

			for i := range basis {
				for j := range basis {
					if i == j {
						continue
					}
					d, err := basis[i].DotForm(basis[j], m)
					require.NoError(t, err)
					assert.InDelta(t, 0, d.Abs().Float(), eps,
						"columns %d and %d are not form-orthogonal", i, j)
				}
			}
		})
	}

	_, err := mustMat(t, [][]float64{{1, 2}, {3, 4}}).OrthogonalBasis()
	assert.ErrorIs(t, err, matrix.ErrNotSymmetric)

	_, err = mustMat(t, [][]float64{{1, 2, 3}}).OrthogonalBasis()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestUnsupportedSurface(t *testing.T) {
	m := mustMat(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.Eigen()
	assert.ErrorIs(t, err, matrix.ErrUnsupported)
	_, err = m.CharPoly()
	assert.ErrorIs(t, err, matrix.ErrUnsupported)
	_, _, err = m.Diagonalize()
	assert.ErrorIs(t, err, matrix.ErrUnsupported)
	_, err = m.Pow(3)
	assert.ErrorIs(t, err, matrix.ErrUnsupported)
}

// TestBilinearFormBridge exercises a Matrix through the
// vector.BilinearForm seam.
func TestBilinearFormBridge(t *testing.T) {
	g := mustMat(t, [][]float64{{2, 0}, {0, 3}})
	v := mustVec(t, 1, 1)
	w := mustVec(t, 1, -1)

	d, err := v.DotForm(w, g)
	require.NoError(t, err)
	assert.InDelta(t, -1, d.Float(), eps) // 2·1·1 + 3·1·(−1)

	var _ vector.BilinearForm = g
}
