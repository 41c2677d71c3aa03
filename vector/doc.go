// Package vector implements fixed-length vectors of scalar.Scalar
// values and their affine counterpart, Point.
//
// 🚀 What lives here?
//
//	• Vector — component-wise add/sub/negate, scalar scale/divide,
//	  dot products (standard or through an arbitrary bilinear form),
//	  magnitude, normalization and the R³ cross product.
//	• Point  — an affine location. Same storage as Vector, different
//	  algebra: Point+Vector→Point, Point−Point→Vector, and
//	  Point+Point simply does not exist in the method set.
//	• Factories — Zeros, Ones, Unit, UnitVectors, Rand, Randn.
//
// A vector's length is fixed at construction (length ≥ 1); every
// operation returns a fresh value. Shape violations fail fast with
// ErrDimensionMismatch, degenerate normalization with ErrZeroVector.
//
// Equality vs collinearity: Equal compares components exactly, while
// IsParallelTo answers the linear-dependence question. They are two
// deliberately separate predicates — pick the one you mean.
//
// Bilinear forms are consumed through the small BilinearForm
// interface so that matrix.Matrix (or any custom form) can plug in
// without this package depending on matrix.
package vector
