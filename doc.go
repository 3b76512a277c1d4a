// Package decimal implements arbitrary-precision decimal arithmetic in the
// style of SQL's NUMERIC type: exact values with no fixed number of
// significant digits, a distinguished NaN, deterministic round-half-away-
// from-zero rounding, and the transcendental functions (Sqrt, Exp, Ln,
// Log10, Pow) a NUMERIC column's callers expect alongside the arithmetic
// operators.
//
// A Decimal is represented internally as a sign, a base-10000 limb array,
// and a weight giving the limb array's most significant position, the
// same representation postgres's own NUMERIC type uses internally. Every
// Decimal is immutable; every operation that produces a new one strips
// leading and trailing zero limbs and checks that the result's weight and
// display scale still fit the type's bounds before returning it.
//
// Every fallible operation returns an error from this package's sentinel
// set (see Code and the Err* values in errors.go) rather than panicking.
// Callers who have already established an operation cannot fail may use
// the MustX wrappers in musts.go instead of checking the error themselves.
package decimal
