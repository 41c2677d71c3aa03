// Package linsys: functional configuration for the solver. This file
// defines Option / Options, the documented defaults, and WithX
// constructors that panic on nonsensical values (programmer error).
package linsys

import (
	"math"

	"github.com/katalvlaran/linalg/fraction"
	"github.com/katalvlaran/linalg/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the pivot tolerance used when reading the
	// reduced row echelon form. It matches matrix.DefaultEps so the
	// solver and Rank agree on what counts as zero.
	DefaultEpsilon = matrix.DefaultEps

	// DefaultMaxDenominator bounds the rational approximation used to
	// rescale direction vectors to integer coordinates.
	DefaultMaxDenominator = int64(fraction.DefaultMaxDenominator)
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid        = "linsys: WithEpsilon: eps must be finite, non-negative"
	panicMaxDenominatorInvalid = "linsys: WithMaxDenominator: limit must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	eps    float64 // >= 0; DefaultEpsilon
	maxDen int64   // >= 1; DefaultMaxDenominator
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		eps:    DefaultEpsilon,
		maxDen: DefaultMaxDenominator,
	}
}

// gatherOptions applies setters over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance for reading the reduced form: it
// governs both the rank classification and the pivot scan, so the
// two can never disagree on what counts as zero. Larger values
// absorb more floating dust at the cost of misreading small genuine
// coefficients.
// Panics on NaN, infinities, or negative values.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxDenominator bounds the denominators of the rational
// approximation behind integer direction coordinates.
// Panics when limit < 1.
func WithMaxDenominator(limit int64) Option {
	if limit < 1 {
		panic(panicMaxDenominatorInvalid)
	}

	return func(o *Options) { o.maxDen = limit }
}
