package vector

import (
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// Point is an affine location. It shares Vector's storage but not its
// algebra: a Point can be translated by a Vector and two Points
// subtract to a Vector, while Point+Point is absent from the method
// set on purpose — the operand-kind table is closed at compile time.
type Point struct {
	elems []scalar.Scalar
}

// NewPoint builds a Point from the given coordinates (defensive copy).
// Errors: ErrEmptyVector when no coordinates are given.
func NewPoint(elems []scalar.Scalar) (Point, error) {
	if len(elems) == 0 {
		return Point{}, ErrEmptyVector
	}
	own := make([]scalar.Scalar, len(elems))
	copy(own, elems)

	return Point{elems: own}, nil
}

// PointFromFloats builds a real-kind Point from float64 coordinates.
func PointFromFloats(vals []float64) (Point, error) {
	v, err := FromFloats(vals)
	if err != nil {
		return Point{}, err
	}

	return Point{elems: v.elems}, nil
}

// Origin returns the n-dimensional origin (all coordinates zero).
// Errors: ErrEmptyVector when n < 1.
func Origin(n int) (Point, error) {
	if n < 1 {
		return Point{}, ErrEmptyVector
	}
	elems := make([]scalar.Scalar, n)
	for i := range elems {
		elems[i] = scalar.Zero()
	}

	return Point{elems: elems}, nil
}

// Len returns the number of coordinates.
func (p Point) Len() int { return len(p.elems) }

// At retrieves coordinate i, or ErrIndexOutOfRange.
func (p Point) At(i int) (scalar.Scalar, error) {
	if i < 0 || i >= len(p.elems) {
		return scalar.Scalar{}, ErrIndexOutOfRange
	}

	return p.elems[i], nil
}

// Components returns a copy of the coordinates.
func (p Point) Components() []scalar.Scalar {
	out := make([]scalar.Scalar, len(p.elems))
	copy(out, p.elems)

	return out
}

// Add translates the point by v: Point + Vector → Point.
// Errors: ErrDimensionMismatch when lengths differ.
func (p Point) Add(v Vector) (Point, error) {
	if p.Len() != v.Len() {
		return Point{}, ErrDimensionMismatch
	}
	out := make([]scalar.Scalar, p.Len())
	for i := range p.elems {
		out[i] = p.elems[i].Add(v.elems[i])
	}

	return Point{elems: out}, nil
}

// Sub returns the displacement from q to p: Point − Point → Vector.
// Errors: ErrDimensionMismatch when lengths differ.
func (p Point) Sub(q Point) (Vector, error) {
	if p.Len() != q.Len() {
		return Vector{}, ErrDimensionMismatch
	}
	out := make([]scalar.Scalar, p.Len())
	for i := range p.elems {
		out[i] = p.elems[i].Sub(q.elems[i])
	}

	return Vector{elems: out}, nil
}

// AsVector returns the radius vector of p (the displacement from the
// origin). This is the only sanctioned bridge from affine back to
// linear space.
func (p Point) AsVector() Vector {
	out := make([]scalar.Scalar, len(p.elems))
	copy(out, p.elems)

	return Vector{elems: out}
}

// Equal reports exact coordinate-wise equality.
func (p Point) Equal(q Point) bool {
	if p.Len() != q.Len() {
		return false
	}
	for i := range p.elems {
		if !p.elems[i].Equal(q.elems[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging.
func (p Point) String() string {
	parts := make([]string, p.Len())
	for i, e := range p.elems {
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
