// Package scalar implements the numeric tower used across linalg:
// a single immutable Scalar value that is an integer, a real, or a
// complex number, with consistent promotion across arithmetic.
//
// Promotion rules (fixed, no surprises):
//
//	int  ∘ int  → int      (except Div, which always yields real)
//	real ∘ any-real → real
//	any  ∘ complex  → complex
//
// Zero testing is exact: IsZero reports v == 0 with no tolerance.
// Tolerance-based comparisons belong to the caller (matrix.Rank and
// the linsys pivot scan own the single package epsilon).
//
// Ordering: real scalars compare by value; as soon as one operand is
// complex, Cmp falls back to comparing magnitudes, mirroring the
// convention of the surrounding toolkit.
//
// All operations return fresh Scalars; a Scalar is never mutated.
package scalar
