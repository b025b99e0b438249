// Package bignumberx implements two immutable arbitrary-precision numeric
// types: BigInt, a signed integer of unbounded magnitude, and BigDecimal, a
// coefficient/exponent pair representing coefficient * 10^exponent.
//
// Both types are built from first principles on top of the internal
// magnitude and radix packages rather than delegating to math/big: the
// point of this module is the magnitude algebra itself (Knuth Algorithm D
// division, super-radix parse/format, context-governed rounding), not a
// thin wrapper around the standard library's bignum.
package bignumberx

import (
	"github.com/izarchtech/bignumberx/internal/magnitude"
	"github.com/izarchtech/bignumberx/internal/radix"
)

// BigInt is an immutable, arbitrary-precision signed integer. The zero
// value is the integer 0.
type BigInt struct {
	sign int8 // -1, 0, +1
	mag  magnitude.Mag
}

// Predefined constants, built once and never mutated.
var (
	Zero   = BigInt{}
	One    = smallBigInt(1, 1)
	Two    = smallBigInt(1, 2)
	Five   = smallBigInt(1, 5)
	Ten    = smallBigInt(1, 10)
	NegOne = smallBigInt(-1, 1)
)

func smallBigInt(sign int, w uint32) BigInt {
	if w == 0 {
		return BigInt{}
	}
	return BigInt{sign: int8(sign), mag: magnitude.Mag{w}}
}

// normalize enforces the sign/magnitude invariants: trims mag, and forces
// sign to 0 exactly when mag is empty.
func normalize(sign int, mag magnitude.Mag) BigInt {
	mag = magnitude.Trim(mag)
	if len(mag) == 0 {
		return BigInt{}
	}
	if sign < 0 {
		return BigInt{sign: -1, mag: mag}
	}
	// A nonzero magnitude with sign 0 is a caller error; treat as positive
	// rather than silently dropping the value.
	return BigInt{sign: 1, mag: mag}
}

// Of constructs a BigInt from an explicit sign and a big-endian magnitude
// word array (index 0 is most significant), validating and trimming per
// the data model invariants.
func Of(sign int, bigEndianWords []uint32) (BigInt, error) {
	if sign != -1 && sign != 0 && sign != 1 {
		return BigInt{}, newErr(OutOfRange, "Of", "sign must be -1, 0, or 1, got %d", sign)
	}
	m := toInternal(bigEndianWords)
	if len(m) == 0 {
		return BigInt{}, nil
	}
	if sign == 0 {
		return BigInt{}, newErr(InvalidOperation, "Of", "nonzero magnitude with sign 0")
	}
	return normalize(sign, m), nil
}

// toInternal reverses a big-endian word array into this package's
// little-endian internal representation, trimming high zero words.
func toInternal(bigEndian []uint32) magnitude.Mag {
	n := len(bigEndian)
	m := make(magnitude.Mag, n)
	for i, w := range bigEndian {
		m[n-1-i] = w
	}
	return magnitude.Trim(m)
}

// Words returns x's magnitude as big-endian 32-bit words (index 0 most
// significant), matching the data model's description of the magnitude
// attribute. Returns an empty slice for zero.
func (x BigInt) Words() []uint32 {
	n := len(x.mag)
	out := make([]uint32, n)
	for i, w := range x.mag {
		out[n-1-i] = w
	}
	return out
}

// Sign returns -1, 0, or +1.
func (x BigInt) Sign() int { return int(x.sign) }

// IsZero reports whether x is 0.
func (x BigInt) IsZero() bool { return x.sign == 0 }

// Neg returns -x.
func (x BigInt) Neg() BigInt {
	if x.sign == 0 {
		return x
	}
	return BigInt{sign: -x.sign, mag: x.mag}
}

// Abs returns |x|.
func (x BigInt) Abs() BigInt {
	if x.sign >= 0 {
		return x
	}
	return x.Neg()
}

// Add returns x+y.
func (x BigInt) Add(y BigInt) BigInt {
	if x.sign == 0 {
		return y
	}
	if y.sign == 0 {
		return x
	}
	if x.sign == y.sign {
		return normalize(int(x.sign), magnitude.Add(x.mag, y.mag))
	}
	switch c := magnitude.Cmp(x.mag, y.mag); {
	case c == 0:
		return BigInt{}
	case c > 0:
		return normalize(int(x.sign), magnitude.Sub(x.mag, y.mag))
	default:
		return normalize(int(y.sign), magnitude.Sub(y.mag, x.mag))
	}
}

// Sub returns x-y.
func (x BigInt) Sub(y BigInt) BigInt {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x BigInt) Mul(y BigInt) BigInt {
	if x.sign == 0 || y.sign == 0 {
		return BigInt{}
	}
	return normalize(int(x.sign)*int(y.sign), magnitude.Mul(x.mag, y.mag))
}

// DivRem returns (q, r) such that x = q*y + r, |r| < |y|, sign(r) in
// {0, sign(x)}. It fails with DivideByZero if y is zero.
func (x BigInt) DivRem(y BigInt) (q, r BigInt, err error) {
	if y.sign == 0 {
		return BigInt{}, BigInt{}, newErr(DivideByZero, "DivRem", "division by zero")
	}
	if x.sign == 0 {
		return BigInt{}, BigInt{}, nil
	}
	qm, rm, derr := magnitude.DivMod(x.mag, y.mag)
	if derr != nil {
		return BigInt{}, BigInt{}, wrapErr(DivideByZero, "DivRem", derr, "division by zero")
	}
	q = normalize(int(x.sign)*int(y.sign), qm)
	r = normalize(int(x.sign), rm)
	return q, r, nil
}

// Div returns the truncating (toward zero) quotient of x/y.
func (x BigInt) Div(y BigInt) (BigInt, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// Rem returns the remainder of x/y with sign(r) in {0, sign(x)}.
func (x BigInt) Rem(y BigInt) (BigInt, error) {
	_, r, err := x.DivRem(y)
	return r, err
}

// Cmp compares x and y: -1, 0, +1.
func (x BigInt) Cmp(y BigInt) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	if x.sign == 0 {
		return 0
	}
	c := magnitude.Cmp(x.mag, y.mag)
	if x.sign < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same value.
func (x BigInt) Equal(y BigInt) bool { return x.Cmp(y) == 0 }

// Precision returns the number of decimal digits in |x|, with 0 treated as
// having 1 digit.
func (x BigInt) Precision() int { return precisionOfMag(x.mag) }

// tenPow9 is the super-digit group size used by Precision/precisionOfMag,
// matching BigDecimal's own nine-digits-per-group chunking.
const tenPow9 = 1_000_000_000

func precisionOfMag(mag magnitude.Mag) int {
	mag = magnitude.Trim(mag)
	if len(mag) == 0 {
		return 1
	}
	work := magnitude.Clone(mag)
	digits := 0
	for !magnitude.IsZero(work) {
		var rem uint32
		work, rem = magnitude.DivModWord(work, tenPow9)
		if magnitude.IsZero(work) {
			digits += decimalDigitCount(rem)
		} else {
			digits += 9
		}
	}
	return digits
}

func decimalDigitCount(v uint32) int {
	thresholds := [...]uint32{0, 9, 99, 999, 9999, 99999, 999999, 9999999, 99999999, 999999999}
	for i := len(thresholds) - 1; i >= 1; i-- {
		if v > thresholds[i-1] {
			return i
		}
	}
	return 1
}

// String formats x in base 10.
func (x BigInt) String() string {
	s, _ := x.Format(10)
	return s
}

// Format formats x in the given radix (2..36).
func (x BigInt) Format(r int) (string, error) {
	s, err := radix.Format(int(x.sign), x.mag, r)
	if err != nil {
		return "", wrapErr(OutOfRange, "Format", err, "invalid radix")
	}
	return s, nil
}

// ParseBigInt parses s as a base-radix integer.
func ParseBigInt(s string, r int) (BigInt, error) {
	if r < radix.MinRadix || r > radix.MaxRadix {
		return BigInt{}, newErr(OutOfRange, "Parse", "radix %d out of range [%d, %d]", r, radix.MinRadix, radix.MaxRadix)
	}
	sign, mag, err := radix.Parse(s, r)
	if err != nil {
		return BigInt{}, wrapErr(Format, "Parse", err, "invalid integer literal")
	}
	return normalize(sign, mag), nil
}
