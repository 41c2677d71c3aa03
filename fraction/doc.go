// Package fraction provides exact rational snapshots of floating
// values: a ComplexFraction is a Gaussian-integer numerator over a
// positive integer denominator, built from a complex128 by
// best-rational approximation with a bounded denominator.
//
// 🚀 What lives here?
//
//	• New / FromFloat — rationalize a floating value with denominator
//	  ≤ maxDen (DefaultMaxDenominator = 100 000), real and imaginary
//	  parts approximated independently and recombined over their LCM,
//	  then reduced by the global GCD.
//	• IntegerCoords — rescale a whole coordinate slice by the LCM of
//	  all denominators so every component becomes an integer; complex
//	  components contribute two integers (Re, Im), real ones a single
//	  integer.
//
// The bounded approximation follows the classic continued-fraction
// walk: it returns the closest fraction to x among all fractions with
// denominator ≤ maxDen, computed over big integers so the exact
// binary expansion of the input never overflows.
//
// The package exists to turn the floating direction vectors of an
// underdetermined linear system into small integer coordinates, but
// the types are self-contained and usable on their own.
package fraction
