package vector

import (
	"math/rand"

	"github.com/katalvlaran/linalg/scalar"
)

// Zeros returns the n-dimensional zero vector.
// Errors: ErrEmptyVector when n < 1.
func Zeros(n int) (Vector, error) {
	if n < 1 {
		return Vector{}, ErrEmptyVector
	}
	elems := make([]scalar.Scalar, n)
	for i := range elems {
		elems[i] = scalar.Zero()
	}

	return Vector{elems: elems}, nil
}

// Ones returns the n-dimensional all-ones vector.
// Errors: ErrEmptyVector when n < 1.
func Ones(n int) (Vector, error) {
	if n < 1 {
		return Vector{}, ErrEmptyVector
	}
	elems := make([]scalar.Scalar, n)
	for i := range elems {
		elems[i] = scalar.One()
	}

	return Vector{elems: elems}, nil
}

// Unit returns eᵢ, the i-th standard basis vector of Rⁿ.
// Errors: ErrEmptyVector when n < 1, ErrIndexOutOfRange for i ∉ [0,n).
func Unit(n, i int) (Vector, error) {
	if n < 1 {
		return Vector{}, ErrEmptyVector
	}
	if i < 0 || i >= n {
		return Vector{}, ErrIndexOutOfRange
	}
	v, _ := Zeros(n)
	v.elems[i] = scalar.One()

	return v, nil
}

// UnitVectors returns the n standard basis vectors of Rⁿ in order.
// Errors: ErrEmptyVector when n < 1.
func UnitVectors(n int) ([]Vector, error) {
	if n < 1 {
		return nil, ErrEmptyVector
	}
	out := make([]Vector, n)
	for i := 0; i < n; i++ {
		out[i], _ = Unit(n, i)
	}

	return out, nil
}

// Rand returns a vector of n components drawn uniformly from [0, 1).
// The caller supplies the source, which keeps tests deterministic.
// Errors: ErrEmptyVector when n < 1.
func Rand(n int, rng *rand.Rand) (Vector, error) {
	if n < 1 {
		return Vector{}, ErrEmptyVector
	}
	elems := make([]scalar.Scalar, n)
	for i := range elems {
		elems[i] = scalar.FromFloat(rng.Float64())
	}

	return Vector{elems: elems}, nil
}

// Randn returns a vector of n standard-normal components.
// The caller supplies the source, which keeps tests deterministic.
// Errors: ErrEmptyVector when n < 1.
func Randn(n int, rng *rand.Rand) (Vector, error) {
	if n < 1 {
		return Vector{}, ErrEmptyVector
	}
	elems := make([]scalar.Scalar, n)
	for i := range elems {
		elems[i] = scalar.FromFloat(rng.NormFloat64())
	}

	return Vector{elems: elems}, nil
}
