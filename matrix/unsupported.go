package matrix

import "github.com/katalvlaran/linalg/scalar"

// The spectral surface below is declared so callers get a stable API
// and an explicit sentinel instead of a silently wrong answer.
// Elimination over exact scalars cannot produce eigenvalues without a
// polynomial root finder, which this package does not carry.

// Eigen returns ErrUnsupported.
func (m *Matrix) Eigen() ([]scalar.Scalar, error) {
	return nil, ErrUnsupported
}

// CharPoly returns ErrUnsupported.
func (m *Matrix) CharPoly() ([]scalar.Scalar, error) {
	return nil, ErrUnsupported
}

// Diagonalize returns ErrUnsupported.
func (m *Matrix) Diagonalize() (*Matrix, *Matrix, error) {
	return nil, nil, ErrUnsupported
}

// Pow returns ErrUnsupported.
func (m *Matrix) Pow(k int) (*Matrix, error) {
	return nil, ErrUnsupported
}
