// Package linalg is a small, exact-minded dense linear algebra engine:
// scalars, vectors, points, matrices and a Gauss-Jordan linear-system
// solver that classifies A·x = b as unique, infinite or inconsistent.
//
// 🚀 What is linalg?
//
//	A deterministic, CPU-bound value library that brings together:
//		• Scalar    — tagged int/real/complex numbers with field arithmetic
//		• Vector    — fixed-length sequences with bilinear-form dot products
//		• Point     — affine locations, algebraically distinct from vectors
//		• Matrix    — dense row-major tables: REF/RREF, rank, det, inverse
//		• Fraction  — exact Gaussian-integer fractions for minimal bases
//		• LinSys    — RREF-driven solver with exact integer direction vectors
//
// ✨ Why choose linalg?
//
//   - Fail-fast sentinel errors – every shape/kind violation is explicit
//   - Deterministic kernels – fixed loop orders, one documented epsilon
//   - Immutable values – each operation returns a fresh result
//   - Pure Go – no cgo, a single test-only dependency
//
// Everything is organized under five subpackages:
//
//	scalar/   — numeric tower (int ⊂ real ⊂ complex) with exact IsZero
//	vector/   — vector-space operations, cross product, Point arithmetic
//	matrix/   — ring/module operations, echelon forms, congruence tools
//	fraction/ — ComplexFraction and float→integer vector rescaling
//	linsys/   — LinearSystem, Solve classification, equation parsing
//
// Quick taste:
//
//	A, _ := matrix.FromFloats([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}})
//	b, _ := vector.FromFloats([]float64{0, 0, 0})
//	sol, _ := linsys.New(A, b).Solve()
//	// sol.Kind == linsys.Infinite, sol.Directions contains (0, 0, 1)
//
// Dive into each package's doc.go for the full operation tables.
//
//	go get github.com/katalvlaran/linalg
package linalg
