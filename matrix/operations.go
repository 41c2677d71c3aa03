package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Add computes the element-wise sum C = A + B as a fresh Matrix.
// Errors: ErrDimensionMismatch when shapes differ.
// Determinism: single flat 0..n-1 loop.
// Complexity: O(r*c).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	data := make([]scalar.Scalar, len(m.data))
	for i := range m.data {
		data[i] = m.data[i].Add(other.data[i])
	}

	return fresh(m.rows, m.cols, data), nil
}

// Sub computes the element-wise difference C = A - B as a fresh Matrix.
// Errors: ErrDimensionMismatch when shapes differ.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	data := make([]scalar.Scalar, len(m.data))
	for i := range m.data {
		data[i] = m.data[i].Sub(other.data[i])
	}

	return fresh(m.rows, m.cols, data), nil
}

// Neg returns -A.
func (m *Matrix) Neg() *Matrix {
	data := make([]scalar.Scalar, len(m.data))
	for i := range m.data {
		data[i] = m.data[i].Neg()
	}

	return fresh(m.rows, m.cols, data)
}

// MulScalar returns k·A.
func (m *Matrix) MulScalar(k scalar.Scalar) *Matrix {
	data := make([]scalar.Scalar, len(m.data))
	for i := range m.data {
		data[i] = m.data[i].Mul(k)
	}

	return fresh(m.rows, m.cols, data)
}

// DivScalar returns A / k.
// Errors: scalar.ErrDivisionByZero when k is exactly zero.
func (m *Matrix) DivScalar(k scalar.Scalar) (*Matrix, error) {
	data := make([]scalar.Scalar, len(m.data))
	for i := range m.data {
		q, err := m.data[i].Div(k)
		if err != nil {
			return nil, err
		}
		data[i] = q
	}

	return fresh(m.rows, m.cols, data), nil
}

// Mul performs the standard matrix product C = A × B.
// Errors: ErrDimensionMismatch when A.cols != B.rows.
// Determinism: fixed i→k→j loop order over the flat storage, skipping
// exact-zero A[i,k] entries.
// Complexity: O(r*n*c).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, ErrDimensionMismatch
	}
	data := make([]scalar.Scalar, m.rows*other.cols)
	for i := range data {
		data[i] = scalar.Zero()
	}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			aik := m.data[i*m.cols+k]
			if aik.IsZero() {
				continue // skip zero for performance
			}
			for j := 0; j < other.cols; j++ {
				idx := i*other.cols + j
				data[idx] = data[idx].Add(aik.Mul(other.data[k*other.cols+j]))
			}
		}
	}

	return fresh(m.rows, other.cols, data), nil
}

// MulVector computes A·x for a column vector x.
// Errors: ErrDimensionMismatch unless len(x) == A.cols.
// Complexity: O(r*c).
func (m *Matrix) MulVector(x vector.Vector) (vector.Vector, error) {
	if x.Len() != m.cols {
		return vector.Vector{}, ErrDimensionMismatch
	}
	comps := x.Components()
	out := make([]scalar.Scalar, m.rows)
	for i := 0; i < m.rows; i++ {
		acc := scalar.Zero()
		for j := 0; j < m.cols; j++ {
			acc = acc.Add(m.data[i*m.cols+j].Mul(comps[j]))
		}
		out[i] = acc
	}

	return vector.New(out)
}

// MulPoint applies the linear map to a point's coordinates:
// Matrix · Point → Point.
// Errors: ErrDimensionMismatch unless len(p) == A.cols.
func (m *Matrix) MulPoint(p vector.Point) (vector.Point, error) {
	mapped, err := m.MulVector(p.AsVector())
	if err != nil {
		return vector.Point{}, err
	}

	return vector.NewPoint(mapped.Components())
}

// Transpose returns Aᵗ as a fresh Matrix.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	data := make([]scalar.Scalar, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}

	return fresh(m.cols, m.rows, data)
}

// Trace returns the sum of the diagonal.
// Errors: ErrNonSquare for rectangular matrices.
func (m *Matrix) Trace() (scalar.Scalar, error) {
	if !m.IsSquare() {
		return scalar.Scalar{}, ErrNonSquare
	}
	acc := scalar.Zero()
	for i := 0; i < m.rows; i++ {
		acc = acc.Add(m.data[i*m.cols+i])
	}

	return acc, nil
}

// Minor returns the submatrix with row i and column j removed.
// Errors: ErrIndexOutOfRange for bad indices, ErrEmptyMatrix when the
// result would have no rows or columns (1×n or n×1 input).
func (m *Matrix) Minor(i, j int) (*Matrix, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return nil, ErrIndexOutOfRange
	}
	if m.rows < 2 || m.cols < 2 {
		return nil, ErrEmptyMatrix
	}
	data := make([]scalar.Scalar, 0, (m.rows-1)*(m.cols-1))
	for r := 0; r < m.rows; r++ {
		if r == i {
			continue
		}
		for c := 0; c < m.cols; c++ {
			if c == j {
				continue
			}
			data = append(data, m.data[r*m.cols+c])
		}
	}

	return fresh(m.rows-1, m.cols-1, data), nil
}

// Adjoint returns the cofactor matrix C with
// C[i,j] = (−1)^(i+j) · det(Minor(i, j)).
// Errors: ErrNonSquare, and construction errors from degenerate
// minors (n must be ≥ 2).
// Complexity: O(n² · n³) via the congruence-based Det of each minor.
func (m *Matrix) Adjoint() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}
	data := make([]scalar.Scalar, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			minor, err := m.Minor(i, j)
			if err != nil {
				return nil, err
			}
			det, err := minor.Det()
			if err != nil {
				return nil, err
			}
			if (i+j)%2 == 1 {
				det = det.Neg()
			}
			data[i*m.cols+j] = det
		}
	}

	return fresh(m.rows, m.cols, data), nil
}

// Hstack stacks other to the right of m: [m | other].
// Errors: ErrDimensionMismatch when row counts differ.
func (m *Matrix) Hstack(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows {
		return nil, ErrDimensionMismatch
	}
	cols := m.cols + other.cols
	data := make([]scalar.Scalar, m.rows*cols)
	for i := 0; i < m.rows; i++ {
		copy(data[i*cols:], m.data[i*m.cols:(i+1)*m.cols])
		copy(data[i*cols+m.cols:], other.data[i*other.cols:(i+1)*other.cols])
	}

	return fresh(m.rows, cols, data), nil
}

// AppendCol stacks v to the right of m as one extra column.
// Errors: ErrDimensionMismatch when len(v) != rows.
func (m *Matrix) AppendCol(v vector.Vector) (*Matrix, error) {
	if v.Len() != m.rows {
		return nil, ErrDimensionMismatch
	}

	return m.Hstack(ColFromVector(v))
}

// Vstack stacks other below m.
// Errors: ErrDimensionMismatch when column counts differ.
func (m *Matrix) Vstack(other *Matrix) (*Matrix, error) {
	if m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	data := make([]scalar.Scalar, 0, len(m.data)+len(other.data))
	data = append(data, m.data...)
	data = append(data, other.data...)

	return fresh(m.rows+other.rows, m.cols, data), nil
}

// AppendRow stacks v below m as one extra row.
// Errors: ErrDimensionMismatch when len(v) != cols.
func (m *Matrix) AppendRow(v vector.Vector) (*Matrix, error) {
	if v.Len() != m.cols {
		return nil, ErrDimensionMismatch
	}

	return m.Vstack(RowFromVector(v))
}

// ElementalRowTransform returns a copy of m whose row i has been
// replaced by α·rowᵢ + β·rowⱼ — the primitive behind congruence
// diagonalization and hand-driven elimination.
// Errors: ErrIndexOutOfRange for bad row indices.
func (m *Matrix) ElementalRowTransform(i int, alpha scalar.Scalar, j int, beta scalar.Scalar) (*Matrix, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		return nil, ErrIndexOutOfRange
	}
	out := m.clone()
	for c := 0; c < m.cols; c++ {
		out.data[i*m.cols+c] = alpha.Mul(m.data[i*m.cols+c]).Add(beta.Mul(m.data[j*m.cols+c]))
	}

	return out, nil
}

// ElementalColTransform returns a copy of m whose column i has been
// replaced by α·colᵢ + β·colⱼ.
// Errors: ErrIndexOutOfRange for bad column indices.
func (m *Matrix) ElementalColTransform(i int, alpha scalar.Scalar, j int, beta scalar.Scalar) (*Matrix, error) {
	if i < 0 || i >= m.cols || j < 0 || j >= m.cols {
		return nil, ErrIndexOutOfRange
	}
	out := m.clone()
	for r := 0; r < m.rows; r++ {
		out.data[r*m.cols+i] = alpha.Mul(m.data[r*m.cols+i]).Add(beta.Mul(m.data[r*m.cols+j]))
	}

	return out, nil
}

// Round rounds every entry to n decimal digits.
func (m *Matrix) Round(n int) *Matrix {
	data := make([]scalar.Scalar, len(m.data))
	for i := range m.data {
		data[i] = m.data[i].Round(n)
	}

	return fresh(m.rows, m.cols, data)
}

// Equal reports exact entry-wise equality of shape and values.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(other.data[i]) {
			return false
		}
	}

	return true
}

// AllClose reports entry-wise equality within eps (difference
// magnitude per entry). Use for floating comparisons where Equal is
// too strict.
func (m *Matrix) AllClose(other *Matrix, eps float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i].Sub(other.data[i]).Abs().Float() > eps {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is exactly zero.
func (m *Matrix) IsZero() bool {
	for i := range m.data {
		if !m.data[i].IsZero() {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m *Matrix) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			e := m.data[i*m.cols+j]
			if i == j && !e.IsIdentity() {
				return false
			}
			if i != j && !e.IsZero() {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports exact symmetry: A[i,j] == A[j,i].
func (m *Matrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if !m.data[i*m.cols+j].Equal(m.data[j*m.cols+i]) {
				return false
			}
		}
	}

	return true
}

// IsOrthogonal reports whether Aᵗ·A is the identity within
// DefaultEps. Floating products rarely survive an exact identity
// check, so this predicate is deliberately approximate.
func (m *Matrix) IsOrthogonal() bool {
	if !m.IsSquare() {
		return false
	}
	prod, err := m.Transpose().Mul(m)
	if err != nil {
		return false
	}
	eye, err := Eye(m.rows)
	if err != nil {
		return false
	}

	return prod.AllClose(eye, DefaultEps)
}

// IsUpperTriangular reports whether every entry strictly below the
// diagonal is exactly zero.
func (m *Matrix) IsUpperTriangular() bool {
	for i := 1; i < m.rows; i++ {
		for j := 0; j < i && j < m.cols; j++ {
			if !m.data[i*m.cols+j].IsZero() {
				return false
			}
		}
	}

	return true
}
