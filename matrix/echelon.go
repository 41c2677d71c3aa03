package matrix

import "github.com/katalvlaran/linalg/scalar"

// gaussJordan runs Gauss-Jordan elimination in place on flat row-major
// storage of shape rows×width. Pivots are searched in the leftmost
// pivotCols columns only, so augmented blocks to the right are carried
// along without ever hosting a pivot. Pivot tests are exact; each
// pivot is normalized to one and cleared from every other row.
// Returns the pivot columns in ascending order.
func gaussJordan(data []scalar.Scalar, rows, width, pivotCols int) []int {
	pivots := make([]int, 0, rows)
	pivotRow := 0
	for col := 0; col < pivotCols && pivotRow < rows; col++ {
		// Locate the first row at or below pivotRow with a nonzero
		// entry in this column.
		src := -1
		for r := pivotRow; r < rows; r++ {
			if !data[r*width+col].IsZero() {
				src = r
				break
			}
		}
		if src == -1 {
			continue // column is free, move right without descending
		}
		if src != pivotRow {
			for c := 0; c < width; c++ {
				data[pivotRow*width+c], data[src*width+c] = data[src*width+c], data[pivotRow*width+c]
			}
		}

		// Normalize the pivot row so the pivot becomes one.
		pivot := data[pivotRow*width+col]
		for c := 0; c < width; c++ {
			q, _ := data[pivotRow*width+c].Div(pivot) // pivot is nonzero
			data[pivotRow*width+c] = q
		}

		// Clear the pivot column from every other row.
		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := data[r*width+col]
			if factor.IsZero() {
				continue
			}
			for c := 0; c < width; c++ {
				data[r*width+c] = data[r*width+c].Sub(factor.Mul(data[pivotRow*width+c]))
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	return pivots
}

// RowEchelon returns the row echelon form of m: Gaussian elimination
// with pivots normalized to one and entries cleared below each pivot
// only. The result is memoized write-once behind sync.Once, so
// repeated calls are free and safe across goroutines.
// Determinism: the pivot is always the first nonzero entry at or
// below the working row.
// Complexity: O(r²·c) on first call, O(1) after.
func (m *Matrix) RowEchelon() *Matrix {
	m.refOnce.Do(func() {
		out := m.clone()
		pivotRow := 0
		for col := 0; col < out.cols && pivotRow < out.rows; col++ {
			src := -1
			for r := pivotRow; r < out.rows; r++ {
				if !out.data[r*out.cols+col].IsZero() {
					src = r
					break
				}
			}
			if src == -1 {
				continue
			}
			if src != pivotRow {
				for c := 0; c < out.cols; c++ {
					out.data[pivotRow*out.cols+c], out.data[src*out.cols+c] =
						out.data[src*out.cols+c], out.data[pivotRow*out.cols+c]
				}
			}
			pivot := out.data[pivotRow*out.cols+col]
			for c := 0; c < out.cols; c++ {
				q, _ := out.data[pivotRow*out.cols+c].Div(pivot)
				out.data[pivotRow*out.cols+c] = q
			}
			for r := pivotRow + 1; r < out.rows; r++ {
				factor := out.data[r*out.cols+col]
				if factor.IsZero() {
					continue
				}
				for c := 0; c < out.cols; c++ {
					out.data[r*out.cols+c] = out.data[r*out.cols+c].Sub(factor.Mul(out.data[pivotRow*out.cols+c]))
				}
			}
			pivotRow++
		}
		m.refMemo = out
	})

	return m.refMemo
}

// ReducedRowEchelon returns the reduced row echelon form of m
// (Gauss-Jordan): pivots are one and every other entry in a pivot
// column is zero. Memoized write-once per instance, like RowEchelon.
// Complexity: O(r²·c) on first call, O(1) after.
func (m *Matrix) ReducedRowEchelon() *Matrix {
	m.rrefOnce.Do(func() {
		out := m.clone()
		gaussJordan(out.data, out.rows, out.cols, out.cols)
		m.rrefMemo = out
	})

	return m.rrefMemo
}

// ReducedRowEchelonBase eliminates the augmented block [m | I] and
// returns both halves: the RREF of m and the accumulated transform B
// with B·m == RREF(m). Pivots never enter the identity block. The
// result is computed fresh on every call.
// Complexity: O(r²·(r+c)).
func (m *Matrix) ReducedRowEchelonBase() (*Matrix, *Matrix) {
	width := m.cols + m.rows
	data := make([]scalar.Scalar, m.rows*width)
	for i := 0; i < m.rows; i++ {
		copy(data[i*width:], m.data[i*m.cols:(i+1)*m.cols])
		for j := 0; j < m.rows; j++ {
			if i == j {
				data[i*width+m.cols+j] = scalar.One()
			} else {
				data[i*width+m.cols+j] = scalar.Zero()
			}
		}
	}
	gaussJordan(data, m.rows, width, m.cols)

	left := make([]scalar.Scalar, m.rows*m.cols)
	base := make([]scalar.Scalar, m.rows*m.rows)
	for i := 0; i < m.rows; i++ {
		copy(left[i*m.cols:], data[i*width:i*width+m.cols])
		copy(base[i*m.rows:], data[i*width+m.cols:(i+1)*width])
	}

	return fresh(m.rows, m.cols, left), fresh(m.rows, m.rows, base)
}

// Rank returns the number of rows of the reduced row echelon form
// holding at least one entry with magnitude above DefaultEps. The
// tolerance absorbs the floating dust elimination leaves in rows that
// are mathematically zero.
// Complexity: O(r²·c) on first call (shares the RREF memo), O(r·c)
// after.
func (m *Matrix) Rank() int {
	rref := m.ReducedRowEchelon()
	rank := 0
	for i := 0; i < rref.rows; i++ {
		for j := 0; j < rref.cols; j++ {
			if rref.data[i*rref.cols+j].Abs().Float() > DefaultEps {
				rank++
				break
			}
		}
	}

	return rank
}
