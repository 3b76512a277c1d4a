package decimal

import (
	"errors"

	"github.com/calebcase/oops"
)

// Error is the domain every fault produced by this package is traced
// through. It mirrors the way calebcase/bsv tags its codec faults with a
// single package-wide domain instead of ad-hoc fmt.Errorf call sites.
var Error = oops.Namespace("decimal")

// Sentinel faults, one per reported error kind. Every fallible operation in
// this package returns one of these (wrapped with a trace via [oops.Trace])
// or nil.
var (
	ErrInvalidArgument = Error.New("invalid argument")
	ErrDivisionByZero  = Error.New("division by zero")
	ErrValueOutOfRange = Error.New("value out of range")
	ErrOutOfMemory     = Error.New("out of memory")
)

// ErrorCode classifies a fault returned by this package into the fixed
// five-kind taxonomy of a SQL NUMERIC implementation.
type ErrorCode int

const (
	// NoError is reported for a nil error, or for an error this package
	// did not produce.
	NoError ErrorCode = iota
	ErrCodeDivisionByZero
	ErrCodeInvalidArgument
	ErrCodeValueOutOfRange
	ErrCodeOutOfMemory
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "NO_ERROR"
	case ErrCodeDivisionByZero:
		return "DIVISION_BY_ZERO"
	case ErrCodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case ErrCodeValueOutOfRange:
		return "VALUE_OUT_OF_RANGE"
	case ErrCodeOutOfMemory:
		return "OUT_OF_MEMORY"
	default:
		return "NO_ERROR"
	}
}

// traceInvalidArgument, traceDivisionByZero, and traceValueOutOfRange attach
// a stack trace to the relevant sentinel at the point it's returned, the
// same oops.Trace(sentinel) idiom calebcase/bsv uses at its own return
// sites.
func traceInvalidArgument() error { return oops.Trace(ErrInvalidArgument) }
func traceDivisionByZero() error  { return oops.Trace(ErrDivisionByZero) }
func traceValueOutOfRange() error { return oops.Trace(ErrValueOutOfRange) }

// Code reports which of the five error kinds err represents. Every public
// routine in this package reports at most one kind per call, so Code never
// needs to look past the first matching sentinel.
func Code(err error) ErrorCode {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, ErrDivisionByZero):
		return ErrCodeDivisionByZero
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrValueOutOfRange):
		return ErrCodeValueOutOfRange
	case errors.Is(err, ErrOutOfMemory):
		return ErrCodeOutOfMemory
	default:
		return NoError
	}
}
