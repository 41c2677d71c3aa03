// Package matrix: sentinel error set (unified, consistent).
// All algorithms return these sentinels and tests check them via
// errors.Is. Panics are reserved for programmer errors in private
// helpers; no user-triggered condition panics.
package matrix

import "errors"

var (
	// ErrEmptyMatrix is returned at construction when no rows or no
	// columns are supplied. Matrices have shape ≥ 1×1.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrRaggedMatrix is returned at construction when rows have
	// unequal lengths.
	ErrRaggedMatrix = errors.New("matrix: ragged rows")

	// ErrDimensionMismatch indicates incompatible shapes between
	// operands: Add/Sub with different shapes, Mul with mismatched
	// inner dimensions, stacking with incompatible edges.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required
	// (Trace, Det, Inv, OrthogonalBasis) but the input was not.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotInvertible is returned by Inv when the rank is below the
	// dimension.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrNotSymmetric is returned by OrthogonalBasis when the input
	// violates exact symmetry.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrIndexOutOfRange indicates a row or column index outside the
	// matrix bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrUnsupported marks the intentionally unimplemented surface:
	// Eigen, CharPoly, Diagonalize, Pow. Explicit failure beats a
	// silently wrong answer.
	ErrUnsupported = errors.New("matrix: operation not supported")
)
