package fraction

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultMaxDenominator bounds the rational approximation when the
// caller has no better idea. Large enough to survive the floating
// dust of elimination, small enough to keep coordinates readable.
const DefaultMaxDenominator = 100_000

// ComplexFraction is (re + im·i) / den with integer parts and den > 0.
// The zero value is 0/1... not quite: construct through New or
// FromFloat, which also reduce by the global GCD.
type ComplexFraction struct {
	re, im int64
	den    int64
}

// New rationalizes z: the real and imaginary parts are independently
// approximated by the closest fraction with denominator ≤ maxDen,
// recombined over the LCM of the two denominators, and reduced by
// gcd(|re|, |im|, den).
// Errors: ErrNonPositiveLimit when maxDen < 1, ErrNotFinite on NaN or
// infinities, ErrOutOfRange when a numerator or the recombined
// denominator does not fit in int64.
// Complexity: O(log maxDen) continued-fraction steps per part.
func New(z complex128, maxDen int64) (ComplexFraction, error) {
	if maxDen < 1 {
		return ComplexFraction{}, ErrNonPositiveLimit
	}
	reN, reD, err := ratApprox(real(z), maxDen)
	if err != nil {
		return ComplexFraction{}, err
	}
	imN, imD, err := ratApprox(imag(z), maxDen)
	if err != nil {
		return ComplexFraction{}, err
	}

	den, ok := lcm64(reD, imD)
	if !ok {
		return ComplexFraction{}, ErrOutOfRange
	}
	re, ok := mulCheck(reN, den/reD)
	if !ok {
		return ComplexFraction{}, ErrOutOfRange
	}
	im, ok := mulCheck(imN, den/imD)
	if !ok {
		return ComplexFraction{}, ErrOutOfRange
	}

	return ComplexFraction{re: re, im: im, den: den}.reduce(), nil
}

// FromFloat rationalizes a real value. See New.
func FromFloat(x float64, maxDen int64) (ComplexFraction, error) {
	return New(complex(x, 0), maxDen)
}

// reduce divides numerator and denominator by their global GCD.
func (f ComplexFraction) reduce() ComplexFraction {
	g := gcd64(gcd64(abs64(f.re), abs64(f.im)), f.den)
	if g > 1 {
		f.re /= g
		f.im /= g
		f.den /= g
	}

	return f
}

// Re returns the real numerator.
func (f ComplexFraction) Re() int64 { return f.re }

// Im returns the imaginary numerator.
func (f ComplexFraction) Im() int64 { return f.im }

// Denominator returns the positive denominator.
func (f ComplexFraction) Denominator() int64 { return f.den }

// IsReal reports a zero imaginary numerator.
func (f ComplexFraction) IsReal() bool { return f.im == 0 }

// IsZero reports a zero numerator.
func (f ComplexFraction) IsZero() bool { return f.re == 0 && f.im == 0 }

// Complex converts back to floating form.
func (f ComplexFraction) Complex() complex128 {
	d := float64(f.den)

	return complex(float64(f.re)/d, float64(f.im)/d)
}

// MulInt returns k·f, reduced.
// Errors: ErrOutOfRange when a scaled numerator overflows int64.
func (f ComplexFraction) MulInt(k int64) (ComplexFraction, error) {
	re, ok := mulCheck(f.re, k)
	if !ok {
		return ComplexFraction{}, ErrOutOfRange
	}
	im, ok := mulCheck(f.im, k)
	if !ok {
		return ComplexFraction{}, ErrOutOfRange
	}

	return ComplexFraction{re: re, im: im, den: f.den}.reduce(), nil
}

// Int returns the floor of the real value.
// Errors: ErrNotReal when the imaginary numerator is nonzero.
func (f ComplexFraction) Int() (int64, error) {
	if f.im != 0 {
		return 0, ErrNotReal
	}
	q := f.re / f.den
	if f.re%f.den != 0 && f.re < 0 {
		q--
	}

	return q, nil
}

// String implements fmt.Stringer.
func (f ComplexFraction) String() string {
	if f.im == 0 {
		return fmt.Sprintf("%d/%d", f.re, f.den)
	}

	return fmt.Sprintf("(%d%+di)/%d", f.re, f.im, f.den)
}

// IntegerCoords rescales a coordinate slice to integers: every value
// is rationalized with denominator ≤ maxDen, all fractions are
// brought over the LCM of their denominators, and the numerators are
// emitted in order. A component with a nonzero imaginary part
// contributes two integers (Re, Im); a real component contributes
// one, so the output may be longer than the input.
// Errors: ErrNonPositiveLimit, ErrNotFinite, ErrOutOfRange when the
// global LCM or a rescaled coordinate overflows int64 (coprime
// denominators compound multiplicatively, so deep inputs can exceed
// the range even when every entry fits on its own).
// Complexity: O(len(vals) · log maxDen).
func IntegerCoords(vals []complex128, maxDen int64) ([]int64, error) {
	fracs := make([]ComplexFraction, len(vals))
	m := int64(1)
	for i, v := range vals {
		f, err := New(v, maxDen)
		if err != nil {
			return nil, err
		}
		fracs[i] = f
		var ok bool
		m, ok = lcm64(m, f.den)
		if !ok {
			return nil, ErrOutOfRange
		}
	}

	coords := make([]int64, 0, len(vals))
	for _, f := range fracs {
		scale := m / f.den
		re, ok := mulCheck(f.re, scale)
		if !ok {
			return nil, ErrOutOfRange
		}
		if f.im != 0 {
			im, ok := mulCheck(f.im, scale)
			if !ok {
				return nil, ErrOutOfRange
			}
			coords = append(coords, re, im)
		} else {
			coords = append(coords, re)
		}
	}

	return coords, nil
}

// ratApprox returns the closest fraction num/den (den ≤ maxDen, den >
// 0) to x. Ties go to the continued-fraction convergent. The walk
// runs over big integers because the exact binary expansion of a
// float64 can carry a denominator near 2^1074; the result narrows to
// int64 only behind an IsInt64 check, so a numerator beyond the range
// surfaces as ErrOutOfRange instead of wrapping.
func ratApprox(x float64, maxDen int64) (int64, int64, error) {
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		return 0, 0, ErrNotFinite
	}

	neg := r.Sign() < 0
	if neg {
		r.Neg(r)
	}
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	limit := big.NewInt(maxDen)

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	a, q2, tmp := new(big.Int), new(big.Int), new(big.Int)
	exact := false
	for {
		a.Quo(n, d)
		q2.Add(q0, tmp.Mul(a, q1))
		if q2.Cmp(limit) > 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, new(big.Int).Add(p0, tmp.Mul(a, p1)), new(big.Int).Set(q2)
		n, d = d, tmp.Sub(n, new(big.Int).Mul(a, d))
		tmp = new(big.Int)
		if d.Sign() == 0 {
			exact = true
			break
		}
	}

	num, den := p1, q1
	if !exact {
		// Two candidates remain: the last convergent p1/q1 and the
		// best semiconvergent (p0+k·p1)/(q0+k·q1) with the largest k
		// keeping the denominator in bounds. Pick whichever lies
		// closer to x.
		k := new(big.Int).Quo(tmp.Sub(limit, q0), q1)
		sp := new(big.Int).Add(p0, new(big.Int).Mul(k, p1))
		sq := new(big.Int).Add(q0, new(big.Int).Mul(k, q1))

		conv := new(big.Rat).SetFrac(p1, q1)
		semi := new(big.Rat).SetFrac(sp, sq)
		dConv := new(big.Rat).Sub(conv, r)
		dSemi := new(big.Rat).Sub(semi, r)
		if dConv.Abs(dConv).Cmp(dSemi.Abs(dSemi)) > 0 {
			num, den = sp, sq
		}
	}

	if neg {
		num = new(big.Int).Neg(num)
	}
	if !num.IsInt64() || !den.IsInt64() {
		return 0, 0, ErrOutOfRange
	}

	return num.Int64(), den.Int64(), nil
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm64 reports false when the least common multiple overflows int64.
func lcm64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	return mulCheck(a/gcd64(a, b), b)
}

// mulCheck multiplies with overflow detection.
func mulCheck(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}
