// Package linsys solves linear systems A·x = b with full
// classification of the outcome.
//
// 🚀 What lives here?
//
//	• LinearSystem — the pair (A, b) with shape validation deferred to
//	  Solve, plus Append for stacking two systems over the same
//	  variables.
//	• Solve — Gauss-Jordan on the augmented block [A|b], then the rank
//	  test: rank(A) < rank([A|b]) → NoSolution; rank(A) = #variables →
//	  Unique; otherwise Infinite with one direction vector per free
//	  column, rescaled to small integer coordinates through
//	  fraction.IntegerCoords and deduplicated.
//	• ParticularSolution — any single solution of a consistent system,
//	  obtained by zeroing the free variables.
//	• ParseEquations — a small parser turning strings like
//	  "2*x + 3*y + z = 5" into a LinearSystem; variables are ordered
//	  alphabetically and everything on the right side is moved left.
//
// Classification is data, not failure: an inconsistent system yields
// Solution{Kind: NoSolution} from Solve, never an error. Errors are
// reserved for malformed input (shape mismatch, unparseable
// equations).
//
// Tuning goes through functional options: WithEpsilon adjusts the
// pivot tolerance used when reading the reduced form, and
// WithMaxDenominator bounds the rational approximation behind the
// integer rescale of direction vectors.
package linsys
