package vector

import (
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// BilinearForm is the minimal read surface a matrix must expose to be
// used as the form M in vᵗ·M·w. matrix.Matrix satisfies it; so does
// any custom implementation.
type BilinearForm interface {
	// Rows returns the number of rows of the form.
	Rows() int

	// Cols returns the number of columns of the form.
	Cols() int

	// At retrieves the form entry at (i, j).
	At(i, j int) (scalar.Scalar, error)
}

// Vector is a fixed-length ordered sequence of scalars. The length is
// set at construction and never changes; derived results are always
// fresh Vectors.
type Vector struct {
	elems []scalar.Scalar
}

// New builds a Vector from the given components (defensive copy).
// Errors: ErrEmptyVector when len(elems) == 0.
func New(elems []scalar.Scalar) (Vector, error) {
	if len(elems) == 0 {
		return Vector{}, ErrEmptyVector
	}
	own := make([]scalar.Scalar, len(elems))
	copy(own, elems)

	return Vector{elems: own}, nil
}

// FromFloats builds a real-kind Vector from float64 components.
func FromFloats(vals []float64) (Vector, error) {
	if len(vals) == 0 {
		return Vector{}, ErrEmptyVector
	}
	elems := make([]scalar.Scalar, len(vals))
	for i, v := range vals {
		elems[i] = scalar.FromFloat(v)
	}

	return Vector{elems: elems}, nil
}

// FromInts builds an integer-kind Vector from int64 components.
func FromInts(vals []int64) (Vector, error) {
	if len(vals) == 0 {
		return Vector{}, ErrEmptyVector
	}
	elems := make([]scalar.Scalar, len(vals))
	for i, v := range vals {
		elems[i] = scalar.FromInt(v)
	}

	return Vector{elems: elems}, nil
}

// Len returns the number of components.
func (v Vector) Len() int { return len(v.elems) }

// At retrieves component i, or ErrIndexOutOfRange.
func (v Vector) At(i int) (scalar.Scalar, error) {
	if i < 0 || i >= len(v.elems) {
		return scalar.Scalar{}, ErrIndexOutOfRange
	}

	return v.elems[i], nil
}

// Components returns a copy of the backing components.
func (v Vector) Components() []scalar.Scalar {
	out := make([]scalar.Scalar, len(v.elems))
	copy(out, v.elems)

	return out
}

// Add returns v + w component-wise.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v Vector) Add(w Vector) (Vector, error) {
	if v.Len() != w.Len() {
		return Vector{}, ErrDimensionMismatch
	}
	out := make([]scalar.Scalar, v.Len())
	for i := range v.elems {
		out[i] = v.elems[i].Add(w.elems[i])
	}

	return Vector{elems: out}, nil
}

// Sub returns v - w component-wise.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Sub(w Vector) (Vector, error) {
	if v.Len() != w.Len() {
		return Vector{}, ErrDimensionMismatch
	}
	out := make([]scalar.Scalar, v.Len())
	for i := range v.elems {
		out[i] = v.elems[i].Sub(w.elems[i])
	}

	return Vector{elems: out}, nil
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	out := make([]scalar.Scalar, v.Len())
	for i := range v.elems {
		out[i] = v.elems[i].Neg()
	}

	return Vector{elems: out}
}

// Scale returns k·v.
func (v Vector) Scale(k scalar.Scalar) Vector {
	out := make([]scalar.Scalar, v.Len())
	for i := range v.elems {
		out[i] = v.elems[i].Mul(k)
	}

	return Vector{elems: out}
}

// Div returns v / k.
// Errors: scalar.ErrDivisionByZero when k is exactly zero.
func (v Vector) Div(k scalar.Scalar) (Vector, error) {
	out := make([]scalar.Scalar, v.Len())
	for i := range v.elems {
		q, err := v.elems[i].Div(k)
		if err != nil {
			return Vector{}, err
		}
		out[i] = q
	}

	return Vector{elems: out}, nil
}

// Dot computes the standard inner product Σ vᵢ·wᵢ.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v Vector) Dot(w Vector) (scalar.Scalar, error) {
	if v.Len() != w.Len() {
		return scalar.Scalar{}, ErrDimensionMismatch
	}
	acc := scalar.Zero()
	for i := range v.elems {
		acc = acc.Add(v.elems[i].Mul(w.elems[i]))
	}

	return acc, nil
}

// DotForm evaluates the bilinear form vᵗ·M·w. The form need not be
// symmetric; any shape-compatible matrix works, which lets callers
// evaluate arbitrary bilinear products without a separate API.
//
// Contract: form.Rows() == v.Len() and form.Cols() == w.Len().
// Errors: ErrDimensionMismatch on an incompatible form or lengths.
// Complexity: O(n·m) for an n×m form.
func (v Vector) DotForm(w Vector, form BilinearForm) (scalar.Scalar, error) {
	if form == nil {
		return v.Dot(w)
	}
	if form.Rows() != v.Len() || form.Cols() != w.Len() {
		return scalar.Scalar{}, ErrDimensionMismatch
	}

	// vᵗ·M·w accumulated row by row: Σᵢ vᵢ · (Σⱼ Mᵢⱼ·wⱼ).
	acc := scalar.Zero()
	for i := 0; i < form.Rows(); i++ {
		rowAcc := scalar.Zero()
		for j := 0; j < form.Cols(); j++ {
			mij, err := form.At(i, j)
			if err != nil {
				return scalar.Scalar{}, err
			}
			rowAcc = rowAcc.Add(mij.Mul(w.elems[j]))
		}
		acc = acc.Add(v.elems[i].Mul(rowAcc))
	}

	return acc, nil
}

// Magnitude returns √(v·v) under the identity form.
func (v Vector) Magnitude() scalar.Scalar {
	dot, _ := v.Dot(v) // equal lengths by construction
	mag, _ := dot.Pow(scalar.FromFloat(0.5))

	return mag
}

// Norm returns v scaled to unit magnitude.
// Errors: ErrZeroVector when the magnitude is exactly zero.
func (v Vector) Norm() (Vector, error) {
	mag := v.Magnitude()
	if mag.IsZero() {
		return Vector{}, ErrZeroVector
	}

	return v.Div(mag)
}

// Cross computes the cross product, defined only in R³.
// Errors: ErrDimensionMismatch unless both operands have length 3.
func (v Vector) Cross(w Vector) (Vector, error) {
	const r3 = 3
	if v.Len() != r3 || w.Len() != r3 {
		return Vector{}, ErrDimensionMismatch
	}
	a, b := v.elems, w.elems

	return Vector{elems: []scalar.Scalar{
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	}}, nil
}

// IsZero reports whether every component is exactly zero.
func (v Vector) IsZero() bool {
	for _, e := range v.elems {
		if !e.IsZero() {
			return false
		}
	}

	return true
}

// Equal reports exact component-wise equality. This is value
// equality; for the linear-dependence question use IsParallelTo.
func (v Vector) Equal(w Vector) bool {
	if v.Len() != w.Len() {
		return false
	}
	for i := range v.elems {
		if !v.elems[i].Equal(w.elems[i]) {
			return false
		}
	}

	return true
}

// AllClose reports component-wise equality within eps (magnitude of
// the difference per component). Use for floating comparisons where
// Equal is too strict.
func (v Vector) AllClose(w Vector, eps float64) bool {
	if v.Len() != w.Len() {
		return false
	}
	for i := range v.elems {
		if v.elems[i].Sub(w.elems[i]).Abs().Float() > eps {
			return false
		}
	}

	return true
}

// IsParallelTo reports whether v and w are linearly dependent within
// eps: all 2×2 minors |vᵢ·wⱼ − vⱼ·wᵢ| vanish. The zero vector is
// parallel to everything. Vectors of different lengths are never
// parallel.
//
// This predicate is the renamed descendant of a historical equality
// operator that actually tested collinearity; keeping it separate
// from Equal makes the intent explicit at every call site.
func (v Vector) IsParallelTo(w Vector, eps float64) bool {
	if v.Len() != w.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		for j := i + 1; j < v.Len(); j++ {
			minor := v.elems[i].Mul(w.elems[j]).Sub(v.elems[j].Mul(w.elems[i]))
			if minor.Abs().Float() > eps {
				return false
			}
		}
	}

	return true
}

// Round rounds every component to n decimal digits.
func (v Vector) Round(n int) Vector {
	out := make([]scalar.Scalar, v.Len())
	for i := range v.elems {
		out[i] = v.elems[i].Round(n)
	}

	return Vector{elems: out}
}

// Floats returns the real parts of the components. Imaginary parts
// are dropped; use Components for the exact values.
func (v Vector) Floats() []float64 {
	out := make([]float64, v.Len())
	for i := range v.elems {
		out[i] = v.elems[i].Float()
	}

	return out
}

// String implements fmt.Stringer for debugging.
func (v Vector) String() string {
	parts := make([]string, v.Len())
	for i, e := range v.elems {
		parts[i] = e.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
