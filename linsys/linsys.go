package linsys

import (
	"fmt"

	"github.com/katalvlaran/linalg/fraction"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Kind classifies the outcome of Solve.
type Kind int

const (
	// Unique: rank(A) = rank([A|b]) = #variables; one exact solution.
	Unique Kind = iota
	// Infinite: rank(A) = rank([A|b]) < #variables; the solution set
	// is a particular solution plus the span of the direction vectors.
	Infinite
	// NoSolution: rank([A|b]) > rank(A); the system is inconsistent.
	NoSolution
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case NoSolution:
		return "no solution"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Solution is the classified result of Solve. Exactly one of the
// payload fields is populated: Unique holds the single solution when
// Kind == Unique, Directions holds one integer-rescaled vector per
// free variable when Kind == Infinite, and both stay zero for
// NoSolution.
type Solution struct {
	Kind       Kind
	Unique     vector.Vector
	Directions []vector.Vector
}

// LinearSystem is the pair (A, b) of a coefficient matrix and a
// right-hand side. Shape compatibility is checked at Solve, not at
// construction, so systems can be assembled incrementally.
type LinearSystem struct {
	a    *matrix.Matrix
	b    vector.Vector
	vars []string // set by ParseEquations, nil otherwise
}

// New wraps a coefficient matrix and a right-hand side.
func New(a *matrix.Matrix, b vector.Vector) *LinearSystem {
	return &LinearSystem{a: a, b: b}
}

// A returns the coefficient matrix.
func (s *LinearSystem) A() *matrix.Matrix { return s.a }

// B returns the right-hand side.
func (s *LinearSystem) B() vector.Vector { return s.b }

// Variables returns the variable names in column order when the
// system was built by ParseEquations, nil otherwise.
func (s *LinearSystem) Variables() []string {
	if s.vars == nil {
		return nil
	}
	out := make([]string, len(s.vars))
	copy(out, s.vars)

	return out
}

// Append stacks another system over the same variables below this
// one: the coefficient rows and right-hand sides are concatenated.
// Errors: ErrDimensionMismatch when the variable counts differ.
func (s *LinearSystem) Append(other *LinearSystem) (*LinearSystem, error) {
	if s.a.Cols() != other.a.Cols() {
		return nil, ErrDimensionMismatch
	}
	a, err := s.a.Vstack(other.a)
	if err != nil {
		return nil, err
	}
	comps := append(s.b.Components(), other.b.Components()...)
	b, err := vector.New(comps)
	if err != nil {
		return nil, err
	}

	return &LinearSystem{a: a, b: b, vars: s.vars}, nil
}

// reduced carries the shared elimination state of Solve and
// ParticularSolution.
type reduced struct {
	rref    *matrix.Matrix
	n, m    int
	rankA   int
	rankAug int
}

// reduce forms [A|b], eliminates it once, and measures both ranks
// from the shared reduced form with the caller's tolerance: a row
// counts toward rank(A) when any of its first m entries exceeds eps,
// and toward rank([A|b]) when any entry of the full row does. The
// left block of RREF([A|b]) is an invertible rescaling of A, so
// counting its nonzero rows is counting the rank of A itself.
func (s *LinearSystem) reduce(eps float64) (reduced, error) {
	n, m := s.a.Shape()
	if s.b.Len() != n {
		return reduced{}, ErrDimensionMismatch
	}
	aug, err := s.a.AppendCol(s.b)
	if err != nil {
		return reduced{}, err
	}

	r := reduced{rref: aug.ReducedRowEchelon(), n: n, m: m}
	for i := 0; i < n; i++ {
		for j := 0; j <= m; j++ {
			if r.entry(i, j).Abs().Float() > eps {
				r.rankAug++
				if j < m {
					r.rankA++
				}
				break
			}
		}
	}

	return r, nil
}

// entry reads an index-checked position of the reduced form.
func (r reduced) entry(i, j int) scalar.Scalar {
	v, _ := r.rref.At(i, j) // indices in range by construction

	return v
}

// pivotColumns walks the reduced form left to right and collects the
// columns whose leading entry exceeds eps, one per pivot row.
func (r reduced) pivotColumns(eps float64) []int {
	pivots := make([]int, 0, r.rankA)
	row := 0
	for col := 0; col < r.m && row < r.rankA; col++ {
		if r.entry(row, col).Abs().Float() > eps {
			pivots = append(pivots, col)
			row++
		}
	}

	return pivots
}

// Solve classifies and solves A·x = b.
//
// Implementation:
//   - Stage 1: Gauss-Jordan on the augmented block [A|b].
//   - Stage 2: the rank test, with both ranks read off the shared
//     reduced form under the configured epsilon — rank([A|b]) >
//     rank(A) means the
//     constant column holds a pivot, so the system is inconsistent;
//     rank(A) equal to the variable count means every column is a
//     pivot and the constant column reads off the unique solution;
//     anything else leaves free variables.
//   - Stage 3 (Infinite only): one direction vector per free column,
//     with 1 at the free variable, 0 at the other free variables and
//     the negated row coefficient at each pivot variable, rescaled to
//     integer coordinates and deduplicated.
//
// Returns:
//   - Solution{Kind: Unique, Unique: x} — the exact solution.
//   - Solution{Kind: Infinite, Directions: ...} — the null-space
//     directions; combine with ParticularSolution for the full set.
//   - Solution{Kind: NoSolution} — inconsistency is data, not error.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != rows(A).
//   - fraction errors when a direction coordinate is not finite.
//
// Determinism: free columns are visited in ascending order and
// duplicate directions keep their first occurrence.
// Complexity: O(n²·m) elimination + O(f·m·log maxDen) rescaling for f
// free columns.
func (s *LinearSystem) Solve(opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)
	r, err := s.reduce(o.eps)
	if err != nil {
		return Solution{}, err
	}

	if r.rankAug > r.rankA {
		return Solution{Kind: NoSolution}, nil
	}

	if r.rankA == r.m {
		comps := make([]scalar.Scalar, r.m)
		for i := 0; i < r.m; i++ {
			comps[i] = r.entry(i, r.m)
		}
		x, err := vector.New(comps)
		if err != nil {
			return Solution{}, err
		}

		return Solution{Kind: Unique, Unique: x}, nil
	}

	pivots := r.pivotColumns(o.eps)
	isPivot := make(map[int]bool, len(pivots))
	for _, c := range pivots {
		isPivot[c] = true
	}

	var dirs []vector.Vector
	seen := make(map[string]bool)
	for free := 0; free < r.m; free++ {
		if isPivot[free] {
			continue
		}
		// 1 at the free variable, the negated coefficient of its
		// column at every pivot variable, 0 elsewhere.
		coords := make([]complex128, r.m)
		coords[free] = 1
		for i, pc := range pivots {
			coords[pc] = -r.entry(i, free).Complex()
		}
		ints, err := fraction.IntegerCoords(coords, o.maxDen)
		if err != nil {
			return Solution{}, err
		}
		key := fmt.Sprint(ints)
		if seen[key] {
			continue
		}
		seen[key] = true

		comps := make([]scalar.Scalar, len(ints))
		for i, c := range ints {
			comps[i] = scalar.FromInt(c)
		}
		d, err := vector.New(comps)
		if err != nil {
			return Solution{}, err
		}
		dirs = append(dirs, d)
	}

	return Solution{Kind: Infinite, Directions: dirs}, nil
}

// ParticularSolution returns one solution of a consistent system,
// chosen by zeroing every free variable. For a uniquely solvable
// system this is the solution itself.
// Errors: ErrDimensionMismatch, ErrInconsistent.
func (s *LinearSystem) ParticularSolution(opts ...Option) (vector.Vector, error) {
	o := gatherOptions(opts...)
	r, err := s.reduce(o.eps)
	if err != nil {
		return vector.Vector{}, err
	}
	if r.rankAug > r.rankA {
		return vector.Vector{}, ErrInconsistent
	}

	comps := make([]scalar.Scalar, r.m)
	for i := range comps {
		comps[i] = scalar.Zero()
	}
	for i, pc := range r.pivotColumns(o.eps) {
		comps[pc] = r.entry(i, r.m)
	}

	return vector.New(comps)
}
