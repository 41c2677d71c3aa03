// Package vector: sentinel error set. All operations return these
// sentinels (optionally wrapped with context via %w); tests match
// them with errors.Is. No user-triggered condition panics.
package vector

import "errors"

var (
	// ErrEmptyVector is returned by constructors and factories when a
	// zero-length vector is requested. Vectors have length ≥ 1.
	ErrEmptyVector = errors.New("vector: length must be >= 1")

	// ErrDimensionMismatch indicates incompatible lengths between
	// operands (add/sub/dot/cross/point arithmetic) or an
	// incompatible bilinear form shape.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector indicates an operation undefined for the zero
	// vector, such as Norm.
	ErrZeroVector = errors.New("vector: zero vector")

	// ErrIndexOutOfRange indicates a component index outside [0, Len).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
)
