package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Det computes the determinant by reducing m to upper-triangular form
// with determinant-preserving paired transforms: rowⱼ −= k·rowᵢ
// followed by colⱼ += k·colᵢ, k = A[j,i]/A[i,i]. Diagonal entries
// that are exactly zero are skipped rather than repaired by pivoting,
// and the determinant is the product of the final diagonal.
// Errors: ErrNonSquare.
// Complexity: O(n³).
func (m *Matrix) Det() (scalar.Scalar, error) {
	if !m.IsSquare() {
		return scalar.Scalar{}, ErrNonSquare
	}
	n := m.rows
	a := make([]scalar.Scalar, len(m.data))
	copy(a, m.data)

	for i := 0; i < n; i++ {
		if a[i*n+i].IsZero() {
			continue
		}
		for j := i + 1; j < n; j++ {
			if a[j*n+i].IsZero() {
				continue
			}
			k, _ := a[j*n+i].Div(a[i*n+i]) // diagonal checked nonzero above
			for c := 0; c < n; c++ {
				a[j*n+c] = a[j*n+c].Sub(k.Mul(a[i*n+c]))
			}
			for r := 0; r < n; r++ {
				a[r*n+j] = a[r*n+j].Add(k.Mul(a[r*n+i]))
			}
		}
	}

	det := scalar.One()
	for i := 0; i < n; i++ {
		det = det.Mul(a[i*n+i])
	}

	return det, nil
}

// Inv returns the multiplicative inverse of m via Gauss-Jordan on the
// augmented block [m | I]: when m has full rank the left half reduces
// to the identity and the right half is m⁻¹.
// Errors: ErrNonSquare, ErrNotInvertible when Rank() < n.
// Complexity: O(n³).
func (m *Matrix) Inv() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}
	if m.Rank() < m.rows {
		return nil, ErrNotInvertible
	}
	_, base := m.ReducedRowEchelonBase()

	return base, nil
}

// OrthogonalBasis diagonalizes the symmetric bilinear form given by m
// through congruence: it accumulates column operations into a
// transition matrix P with Pᵗ·m·P diagonal, and returns the columns
// of P. The returned vectors are pairwise orthogonal with respect to
// the form (DotForm of distinct columns against m vanishes), though
// generally not orthonormal.
//
// Implementation: symmetric Gaussian congruence. A zero working
// diagonal is repaired by swapping in a later nonzero diagonal, or
// failing that by folding in a row/column with a nonzero off-diagonal
// coupling; a fully decoupled variable is left in place (degenerate
// form direction).
//
// Errors: ErrNonSquare, ErrNotSymmetric (symmetry is checked
// exactly).
// Complexity: O(n³).
func (m *Matrix) OrthogonalBasis() ([]vector.Vector, error) {
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}
	if !m.IsSymmetric() {
		return nil, ErrNotSymmetric
	}
	n := m.rows
	a := make([]scalar.Scalar, len(m.data))
	copy(a, m.data)
	p := make([]scalar.Scalar, n*n)
	for i := range p {
		p[i] = scalar.Zero()
	}
	for i := 0; i < n; i++ {
		p[i*n+i] = scalar.One()
	}

	swapSym := func(i, k int) {
		for c := 0; c < n; c++ {
			a[i*n+c], a[k*n+c] = a[k*n+c], a[i*n+c]
		}
		for r := 0; r < n; r++ {
			a[r*n+i], a[r*n+k] = a[r*n+k], a[r*n+i]
		}
		for r := 0; r < n; r++ {
			p[r*n+i], p[r*n+k] = p[r*n+k], p[r*n+i]
		}
	}
	foldSym := func(i, k int) {
		for c := 0; c < n; c++ {
			a[i*n+c] = a[i*n+c].Add(a[k*n+c])
		}
		for r := 0; r < n; r++ {
			a[r*n+i] = a[r*n+i].Add(a[r*n+k])
		}
		for r := 0; r < n; r++ {
			p[r*n+i] = p[r*n+i].Add(p[r*n+k])
		}
	}

	for i := 0; i < n; i++ {
		if a[i*n+i].IsZero() {
			repaired := false
			for k := i + 1; k < n; k++ {
				if !a[k*n+k].IsZero() {
					swapSym(i, k)
					repaired = true
					break
				}
			}
			if !repaired {
				for k := i + 1; k < n; k++ {
					if !a[i*n+k].IsZero() {
						foldSym(i, k)
						repaired = true
						break
					}
				}
			}
			if !repaired {
				continue // variable i is fully decoupled
			}
		}

		for j := i + 1; j < n; j++ {
			if a[i*n+j].IsZero() {
				continue
			}
			k, _ := a[i*n+j].Div(a[i*n+i])
			// colⱼ −= k·colᵢ, then the matching row operation keeps
			// the working matrix symmetric.
			for r := 0; r < n; r++ {
				a[r*n+j] = a[r*n+j].Sub(k.Mul(a[r*n+i]))
			}
			for c := 0; c < n; c++ {
				a[j*n+c] = a[j*n+c].Sub(k.Mul(a[i*n+c]))
			}
			for r := 0; r < n; r++ {
				p[r*n+j] = p[r*n+j].Sub(k.Mul(p[r*n+i]))
			}
		}
	}

	basis := make([]vector.Vector, n)
	for j := 0; j < n; j++ {
		col := make([]scalar.Scalar, n)
		for r := 0; r < n; r++ {
			col[r] = p[r*n+j]
		}
		v, err := vector.New(col)
		if err != nil {
			return nil, err
		}
		basis[j] = v
	}

	return basis, nil
}
