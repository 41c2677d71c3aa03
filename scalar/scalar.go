package scalar

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Kind tags the numeric species of a Scalar. Kinds form a ladder
// Int < Real < Complex; binary operations promote to the larger one.
type Kind uint8

const (
	// Int marks a scalar whose value is an exact integer.
	Int Kind = iota

	// Real marks a scalar backed by a float64 value.
	Real

	// Complex marks a scalar with a (possibly zero) imaginary part.
	Complex
)

// String returns the kind name for debugging.
func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Real:
		return "Real"
	default:
		return "Complex"
	}
}

var (
	// ErrDivisionByZero indicates a division (or negative power of zero)
	// whose divisor is exactly zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrNonIntegral indicates that Int() was called on a value with a
	// fractional or imaginary component.
	ErrNonIntegral = errors.New("scalar: value is not an integer")
)

// Scalar is one immutable numeric value. The payload is a complex128;
// the kind records which species the value belongs to so that
// promotion stays consistent across chained arithmetic.
type Scalar struct {
	v    complex128
	kind Kind
}

// FromInt builds an integer-kind Scalar.
func FromInt(v int64) Scalar {
	return Scalar{v: complex(float64(v), 0), kind: Int}
}

// FromFloat builds a real-kind Scalar. NaN and Inf are not rejected
// here; kernels that must exclude them validate at their boundary.
func FromFloat(v float64) Scalar {
	return Scalar{v: complex(v, 0), kind: Real}
}

// FromComplex builds a complex-kind Scalar. A zero imaginary part
// still yields Complex kind: kinds record provenance, not value.
func FromComplex(v complex128) Scalar {
	return Scalar{v: v, kind: Complex}
}

// Zero is the additive identity (integer kind).
func Zero() Scalar { return FromInt(0) }

// One is the multiplicative identity (integer kind).
func One() Scalar { return FromInt(1) }

// promote returns the wider of two kinds.
func promote(a, b Kind) Kind {
	if a > b {
		return a
	}

	return b
}

// Kind reports the numeric species of s.
func (s Scalar) Kind() Kind { return s.kind }

// Complex returns the raw complex128 payload.
func (s Scalar) Complex() complex128 { return s.v }

// Float returns the real part of s as a float64.
func (s Scalar) Float() float64 { return real(s.v) }

// Int returns the value as an int64, or ErrNonIntegral when the value
// carries an imaginary or fractional component.
func (s Scalar) Int() (int64, error) {
	if imag(s.v) != 0 {
		return 0, ErrNonIntegral
	}
	re := real(s.v)
	if re != math.Trunc(re) {
		return 0, ErrNonIntegral
	}

	return int64(re), nil
}

// IsZero reports whether s is exactly zero. No tolerance is applied;
// approximate comparisons belong to the caller.
func (s Scalar) IsZero() bool { return s.v == 0 }

// IsIdentity reports whether s is exactly one.
func (s Scalar) IsIdentity() bool { return s.v == 1 }

// IsReal reports whether the imaginary part of s is exactly zero.
func (s Scalar) IsReal() bool { return imag(s.v) == 0 }

// Equal reports exact numeric equality, ignoring kinds: the integer 2,
// the real 2.0 and the complex 2+0i are all equal.
func (s Scalar) Equal(other Scalar) bool { return s.v == other.v }

// Add returns s + other under the promotion ladder.
func (s Scalar) Add(other Scalar) Scalar {
	return Scalar{v: s.v + other.v, kind: promote(s.kind, other.kind)}
}

// Sub returns s - other under the promotion ladder.
func (s Scalar) Sub(other Scalar) Scalar {
	return Scalar{v: s.v - other.v, kind: promote(s.kind, other.kind)}
}

// Mul returns s * other under the promotion ladder.
func (s Scalar) Mul(other Scalar) Scalar {
	return Scalar{v: s.v * other.v, kind: promote(s.kind, other.kind)}
}

// Neg returns -s, keeping the kind.
func (s Scalar) Neg() Scalar {
	return Scalar{v: -s.v, kind: s.kind}
}

// Abs returns |s|. For complex values this is the modulus, which
// lands in Real kind; integer magnitudes stay Int.
func (s Scalar) Abs() Scalar {
	if s.kind == Complex {
		return Scalar{v: complex(cmplx.Abs(s.v), 0), kind: Real}
	}

	return Scalar{v: complex(math.Abs(real(s.v)), 0), kind: s.kind}
}

// Div returns s / other, or ErrDivisionByZero when other is exactly
// zero. Integer operands promote to Real (the quotient of two
// integers is not, in general, an integer).
func (s Scalar) Div(other Scalar) (Scalar, error) {
	if other.IsZero() {
		return Scalar{}, ErrDivisionByZero
	}
	kind := promote(promote(s.kind, other.kind), Real)

	return Scalar{v: s.v / other.v, kind: kind}, nil
}

// Inv returns the multiplicative inverse 1/s, or ErrDivisionByZero
// for zero.
func (s Scalar) Inv() (Scalar, error) {
	return One().Div(s)
}

// Pow returns s raised to exp.
//
// Kind of the result:
//   - int ^ int(≥0)                      → int
//   - int ^ int(<0), any real involved   → real
//   - negative real base, fractional exp → complex (principal branch)
//   - complex involved                   → complex
//
// Errors: ErrDivisionByZero for 0 raised to a negative real power.
func (s Scalar) Pow(exp Scalar) (Scalar, error) {
	if s.IsZero() && exp.IsReal() && real(exp.v) < 0 {
		return Scalar{}, ErrDivisionByZero
	}

	// Complex base or exponent: principal branch via cmplx.Pow.
	if s.kind == Complex || exp.kind == Complex {
		return Scalar{v: cmplx.Pow(s.v, exp.v), kind: Complex}, nil
	}

	base, power := real(s.v), real(exp.v)

	// Negative base with a fractional exponent leaves the real line.
	if base < 0 && power != math.Trunc(power) {
		return Scalar{v: cmplx.Pow(s.v, exp.v), kind: Complex}, nil
	}

	kind := promote(s.kind, exp.kind)
	if kind == Int && power < 0 {
		kind = Real // 2^-1 is not an integer
	}

	return Scalar{v: complex(math.Pow(base, power), 0), kind: kind}, nil
}

// Round rounds to n digits after the decimal point. Complex values
// round their real and imaginary parts independently.
func (s Scalar) Round(n int) Scalar {
	return Scalar{
		v:    complex(roundTo(real(s.v), n), roundTo(imag(s.v), n)),
		kind: s.kind,
	}
}

// roundTo rounds x half-away-from-zero at n decimal digits.
func roundTo(x float64, n int) float64 {
	p := math.Pow(10, float64(n))

	return math.Round(x*p) / p
}

// Cmp compares s and other: -1, 0 or +1. Real scalars compare by
// value; as soon as either side is complex, magnitudes are compared.
func (s Scalar) Cmp(other Scalar) int {
	var a, b float64
	if s.kind == Complex || other.kind == Complex {
		a, b = cmplx.Abs(s.v), cmplx.Abs(other.v)
	} else {
		a, b = real(s.v), real(other.v)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports s < other under the Cmp convention.
func (s Scalar) Less(other Scalar) bool { return s.Cmp(other) < 0 }

// String implements fmt.Stringer for debugging output.
func (s Scalar) String() string {
	switch {
	case s.kind == Complex:
		return fmt.Sprintf("%g", s.v)
	case s.kind == Int:
		return fmt.Sprintf("%d", int64(real(s.v)))
	default:
		return fmt.Sprintf("%g", real(s.v))
	}
}
