package fraction

import "errors"

var (
	// ErrNonPositiveLimit is returned when the denominator bound is
	// below one.
	ErrNonPositiveLimit = errors.New("fraction: denominator limit must be positive")

	// ErrNotFinite is returned when the input carries NaN or an
	// infinity; those have no rational approximation.
	ErrNotFinite = errors.New("fraction: value is not finite")

	// ErrNotReal is returned by Int when the imaginary numerator is
	// nonzero.
	ErrNotReal = errors.New("fraction: value has a nonzero imaginary part")

	// ErrOutOfRange is returned when a numerator, denominator LCM, or
	// rescaled coordinate does not fit in int64. Overflow is always
	// reported, never wrapped silently.
	ErrOutOfRange = errors.New("fraction: value exceeds the int64 range")
)
