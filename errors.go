package bignumberx

import "github.com/pkg/errors"

// Kind classifies the error conditions raised by this package, per the
// error-handling design: Format, OutOfRange, DivideByZero, Arithmetic,
// Overflow are all surfaced at the boundary that introduced the invalid
// input. InvalidOperation signals a programmer bug / internal invariant
// breach rather than bad caller input.
type Kind int

const (
	// Format is a malformed numeric string.
	Format Kind = iota
	// OutOfRange covers an out-of-bounds radix or a Power exponent outside
	// its allowed range.
	OutOfRange
	// DivideByZero is integer division by zero.
	DivideByZero
	// Arithmetic covers decimal division by zero, a Rounding failure under
	// Unnecessary, a non-terminating exact decimal division, and a negative
	// bit index.
	Arithmetic
	// Overflow covers an exponent narrowing that would change the value, or
	// an IEEE-754 NaN/Infinity input. The fixed-width conversions (AsInt32
	// and the like) report an exceeded range through their bool result, not
	// through an error.
	Overflow
	// InvalidOperation signals an internal invariant breach: a programmer
	// bug in this package rather than bad caller input.
	InvalidOperation
)

func (k Kind) String() string {
	switch k {
	case Format:
		return "Format"
	case OutOfRange:
		return "OutOfRange"
	case DivideByZero:
		return "DivideByZero"
	case Arithmetic:
		return "Arithmetic"
	case Overflow:
		return "Overflow"
	case InvalidOperation:
		return "InvalidOperation"
	default:
		return "Unknown"
	}
}

// NumError is the error type returned by every fallible operation in this
// package. It carries a Kind so callers can branch on the condition class,
// and wraps the underlying cause (built with github.com/pkg/errors, which
// records a stack trace that %+v prints when applied to the cause itself).
type NumError struct {
	Kind Kind
	Op   string
	err  error
}

func (e *NumError) Error() string {
	return e.Op + ": " + e.Kind.String() + ": " + e.err.Error()
}

// Cause implements the github.com/pkg/errors Causer interface.
func (e *NumError) Cause() error { return e.err }

// Unwrap supports errors.Is/errors.As from the standard library too.
func (e *NumError) Unwrap() error { return e.err }

func newErr(kind Kind, op string, format string, args ...interface{}) *NumError {
	return &NumError{Kind: kind, Op: op, err: errors.Errorf(format, args...)}
}

func wrapErr(kind Kind, op string, err error, msg string) *NumError {
	return &NumError{Kind: kind, Op: op, err: errors.Wrap(err, msg)}
}

// IsKind reports whether err is a *NumError of the given Kind.
func IsKind(err error, kind Kind) bool {
	ne, ok := err.(*NumError)
	return ok && ne.Kind == kind
}
