// Package matrix implements dense, immutable matrices of
// scalar.Scalar values and the elimination algorithms built on them.
//
// 🚀 What lives here?
//
//	• Construction — New, FromFloats, FromVectors, Eye, Zeros; ragged
//	  or empty input fails at the door (ErrEmptyMatrix/ErrRaggedMatrix).
//	• Ring/module ops — Add, Sub, Neg, MulScalar, DivScalar, and the
//	  typed products Mul (matrix), MulVector, MulPoint.
//	• Elimination — RowEchelon (Gaussian, partial pivoting) and
//	  ReducedRowEchelon (Gauss-Jordan), both memoized write-once per
//	  instance; ReducedRowEchelonBase additionally tracks the
//	  transform accumulated on [A|I].
//	• Derived values — Rank, Det (congruence-preserving
//	  triangularization), Inv ([A|I] RREF), Trace, Minor, Adjoint.
//	• Structure tools — Transpose, Hstack/Vstack and the vector
//	  append variants, elemental row/column transformations, and
//	  congruence diagonalization of symmetric bilinear forms
//	  (OrthogonalBasis).
//
// Epsilon policy (single source of truth): Scalar zero tests are
// exact everywhere; the one floating tolerance in the package is
// DefaultEps (1e-10), used by Rank and by the approximate predicates
// (IsOrthogonal, AllClose). Pivot selection during elimination uses
// exact zero tests, mirroring the exactness contract of scalar.
//
// Concurrency: a Matrix is immutable after construction except for
// the REF/RREF memo, which is guarded by sync.Once — write-once,
// read-many, safe to share across goroutines.
//
// Eigen-decomposition, the characteristic polynomial, matrix powers
// and diagonalization are intentionally unimplemented and return
// ErrUnsupported rather than a silently wrong value.
package matrix
