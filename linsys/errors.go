package linsys

import "errors"

var (
	// ErrDimensionMismatch is returned by Solve when len(b) does not
	// match the number of rows of A, and by Append when the stacked
	// systems disagree on the number of variables.
	ErrDimensionMismatch = errors.New("linsys: dimension mismatch between A and b")

	// ErrInconsistent is returned by ParticularSolution when the
	// system has no solution. Solve itself reports the same condition
	// as Solution{Kind: NoSolution} without an error.
	ErrInconsistent = errors.New("linsys: system is inconsistent")

	// ErrMissingEquals marks an equation without '='.
	ErrMissingEquals = errors.New("linsys: equation is missing '='")

	// ErrBadTerm marks a term the parser cannot read.
	ErrBadTerm = errors.New("linsys: unparseable term")

	// ErrNoVariables is returned when the parsed equations mention no
	// variables at all.
	ErrNoVariables = errors.New("linsys: no variables found in equations")
)
