package matrix

import (
	"strings"
	"sync"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// DefaultEps is the single floating tolerance of the package. Rank
// counts a row as nonzero when any entry magnitude exceeds it, and
// the approximate predicates (IsOrthogonal, AllClose) compare against
// it. Scalar zero tests everywhere else are exact.
const DefaultEps = 1e-10

// Matrix is a dense, row-major table of scalars with at least one row
// and one column. A Matrix is immutable after construction except for
// its echelon memo, which is computed at most once behind sync.Once
// and never invalidated.
type Matrix struct {
	rows, cols int
	data       []scalar.Scalar // flat backing storage, length == rows*cols

	refOnce  sync.Once
	refMemo  *Matrix
	rrefOnce sync.Once
	rrefMemo *Matrix
}

// New builds a Matrix from rows of scalars (defensive copy).
// Errors: ErrEmptyMatrix (no rows, or an empty first row),
// ErrRaggedMatrix (rows of unequal length).
// Complexity: O(r*c).
func New(rows [][]scalar.Scalar) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(rows[0])
	data := make([]scalar.Scalar, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedMatrix
		}
		data = append(data, row...)
	}

	return &Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// FromFloats builds a real-kind Matrix from float64 rows.
// Errors: ErrEmptyMatrix, ErrRaggedMatrix.
func FromFloats(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(rows[0])
	data := make([]scalar.Scalar, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedMatrix
		}
		for _, v := range row {
			data = append(data, scalar.FromFloat(v))
		}
	}

	return &Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// FromVectors places the given vectors as the columns of a new
// Matrix, in order.
// Errors: ErrEmptyMatrix (no vectors), ErrDimensionMismatch (unequal
// lengths).
func FromVectors(vecs []vector.Vector) (*Matrix, error) {
	if len(vecs) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := vecs[0].Len()
	for _, v := range vecs {
		if v.Len() != n {
			return nil, ErrDimensionMismatch
		}
	}
	data := make([]scalar.Scalar, n*len(vecs))
	for j, v := range vecs {
		comps := v.Components()
		for i := 0; i < n; i++ {
			data[i*len(vecs)+j] = comps[i]
		}
	}

	return &Matrix{rows: n, cols: len(vecs), data: data}, nil
}

// RowFromVector returns the 1×n matrix holding v as its only row.
func RowFromVector(v vector.Vector) *Matrix {
	return &Matrix{rows: 1, cols: v.Len(), data: v.Components()}
}

// ColFromVector returns the n×1 matrix holding v as its only column.
func ColFromVector(v vector.Vector) *Matrix {
	return &Matrix{rows: v.Len(), cols: 1, data: v.Components()}
}

// Eye returns the n×n identity matrix.
// Errors: ErrEmptyMatrix when n < 1.
func Eye(n int) (*Matrix, error) {
	if n < 1 {
		return nil, ErrEmptyMatrix
	}
	data := make([]scalar.Scalar, n*n)
	for i := range data {
		data[i] = scalar.Zero()
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = scalar.One()
	}

	return &Matrix{rows: n, cols: n, data: data}, nil
}

// Zeros returns the r×c zero matrix.
// Errors: ErrEmptyMatrix when r < 1 or c < 1.
func Zeros(r, c int) (*Matrix, error) {
	if r < 1 || c < 1 {
		return nil, ErrEmptyMatrix
	}
	data := make([]scalar.Scalar, r*c)
	for i := range data {
		data[i] = scalar.Zero()
	}

	return &Matrix{rows: r, cols: c, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols). Complexity: O(1).
func (m *Matrix) Shape() (int, int) { return m.rows, m.cols }

// IsSquare reports rows == cols.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At retrieves the entry at (i, j), or ErrIndexOutOfRange.
// Together with Rows and Cols this satisfies vector.BilinearForm, so
// any Matrix can serve as the form in Vector.DotForm.
func (m *Matrix) At(i, j int) (scalar.Scalar, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return scalar.Scalar{}, ErrIndexOutOfRange
	}

	return m.data[i*m.cols+j], nil
}

// Row returns row i as a Vector, or ErrIndexOutOfRange.
func (m *Matrix) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= m.rows {
		return vector.Vector{}, ErrIndexOutOfRange
	}
	row := make([]scalar.Scalar, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	v, err := vector.New(row)
	if err != nil {
		return vector.Vector{}, err
	}

	return v, nil
}

// Col returns column j as a Vector, or ErrIndexOutOfRange.
func (m *Matrix) Col(j int) (vector.Vector, error) {
	if j < 0 || j >= m.cols {
		return vector.Vector{}, ErrIndexOutOfRange
	}
	col := make([]scalar.Scalar, m.rows)
	for i := 0; i < m.rows; i++ {
		col[i] = m.data[i*m.cols+j]
	}
	v, err := vector.New(col)
	if err != nil {
		return vector.Vector{}, err
	}

	return v, nil
}

// clone returns a deep copy without the memo (derived state is not
// transplanted between instances).
func (m *Matrix) clone() *Matrix {
	data := make([]scalar.Scalar, len(m.data))
	copy(data, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// fresh wraps already-owned backing storage in a new Matrix.
// Callers must not retain the slice.
func fresh(rows, cols int, data []scalar.Scalar) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: data}
}

// String implements fmt.Stringer for debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.cols+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
